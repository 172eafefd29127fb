package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skillforge/course-platform/internal/pkg/token"
)

// SubjectIDKey is the echo context key under which Auth stores the verified
// account id.
const SubjectIDKey = "subjectID"

// Auth verifies the bearer token against one namespace secret and injects the
// resolved subject id into the request context. Missing, malformed, or
// wrong-namespace tokens are rejected with 403 and the handler never runs.
//
// The Authorization header may carry either "Bearer <token>" or the raw token.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusForbidden, "token missing")
			}

			raw := header
			if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				raw = parts[1]
			}

			id, err := token.Verify(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			c.Set(SubjectIDKey, id)
			return next(c)
		}
	}
}
