package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillforge/course-platform/internal/core/domain"
	"github.com/skillforge/course-platform/internal/core/ports"
)

// purchaseRequest carries the course being bought. Accepted from the JSON
// body or the courseId query parameter.
type purchaseRequest struct {
	CourseID string `json:"courseId" query:"courseId"`
}

type userPurchasesResponse struct {
	Purchases  []domain.Purchase `json:"purchases"`
	CourseData []domain.Course   `json:"courseData"`
}

// PurchaseHandler serves purchase recording and the user's purchase listing.
type PurchaseHandler struct {
	service ports.PurchaseService
}

func NewPurchaseHandler(service ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

// Record handles GET /api/v1/courses/purchase for an authenticated user.
// No payment or enrollment check backs the purchase.
//
// @Summary      Buy a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        courseId  query     string  false  "Course id (may also be sent in the JSON body)"
// @Success      200       {object}  messageResponse
// @Failure      403       {object}  messageResponse
// @Failure      500       {object}  messageResponse
// @Router       /api/v1/courses/purchase [get]
func (h *PurchaseHandler) Record(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Incorrect Format"})
	}

	if err := h.service.Record(c.Request().Context(), userID, req.CourseID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "You Have Successfully Bought The Course"})
}

// List handles GET /api/v1/user/purchases: the user's purchase records plus
// the details of every purchased course.
//
// @Summary      List own purchases
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userPurchasesResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/v1/user/purchases [get]
func (h *PurchaseHandler) List(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userPurchasesResponse{
		Purchases:  result.Purchases,
		CourseData: result.Courses,
	})
}
