package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillforge/course-platform/internal/api/handler"
	"github.com/skillforge/course-platform/internal/api/middleware"
	"github.com/skillforge/course-platform/internal/core/domain"
	"github.com/skillforge/course-platform/internal/core/service"
	"github.com/skillforge/course-platform/internal/infrastructure/config"
	mongodb "github.com/skillforge/course-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/skillforge/course-platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("courseplatform"))

	// --- Dependencies ---
	usersRepo := mongodb.NewAccountRepository(db, mongodb.CollectionUsers)
	adminsRepo := mongodb.NewAccountRepository(db, mongodb.CollectionAdmins)
	coursesRepo := mongodb.NewCourseRepository(db)
	purchasesRepo := mongodb.NewPurchaseRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb, cfg.CatalogCacheTTL)

	userAuthService := service.NewAuthService(usersRepo, domain.NamespaceUser, cfg.JWTUserSecret, log)
	adminAuthService := service.NewAuthService(adminsRepo, domain.NamespaceAdmin, cfg.JWTAdminSecret, log)
	courseService := service.NewCourseService(coursesRepo, catalogCache, log)
	purchaseService := service.NewPurchaseService(purchasesRepo, coursesRepo, log)

	userAuthHandler := handler.NewAuthHandler(userAuthService, domain.NamespaceUser)
	adminAuthHandler := handler.NewAuthHandler(adminAuthService, domain.NamespaceAdmin)
	courseHandler := handler.NewCourseHandler(courseService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)

	userAuth := middleware.Auth(cfg.JWTUserSecret)
	adminAuth := middleware.Auth(cfg.JWTAdminSecret)

	// --- API routes ---
	user := e.Group("/api/v1/user")
	user.POST("/signup", userAuthHandler.Signup)
	user.POST("/signin", userAuthHandler.Signin)
	user.GET("/purchases", purchaseHandler.List, userAuth)

	courses := e.Group("/api/v1/courses")
	courses.GET("/course", courseHandler.ListAll)
	courses.GET("/purchase", purchaseHandler.Record, userAuth)

	admin := e.Group("/api/v1/admin")
	admin.POST("/signup", adminAuthHandler.Signup)
	admin.POST("/signin", adminAuthHandler.Signin)
	admin.POST("/course", courseHandler.Create, adminAuth)
	admin.PUT("/course", courseHandler.Update, adminAuth)
	admin.GET("/course/bulk", courseHandler.ListMine, adminAuth)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
