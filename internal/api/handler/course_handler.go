package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillforge/course-platform/internal/core/ports"
)

// CourseHandler serves catalog management (admin-gated) and the public
// listing.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// Create handles POST /api/v1/admin/course. The creator is always the
// authenticated admin, regardless of any creatorId in the body.
//
// @Summary      Create a course
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course fields"
// @Success      200   {object}  courseMutationResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/v1/admin/course [post]
func (h *CourseHandler) Create(c echo.Context) error {
	adminID, err := subjectID(c)
	if err != nil {
		return err
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Incorrect Format"})
	}

	courseID, err := h.service.Create(c.Request().Context(), ports.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		CreatorID:   adminID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, courseMutationResponse{
		Message:  "Course Created",
		CourseID: courseID,
	})
}

// Update handles PUT /api/v1/admin/course. Only the course matching both the
// given id and the caller's creatorId is touched; a non-match updates nothing
// and still reports success with the requested course id.
//
// @Summary      Update a course
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCourseRequest  true  "Course fields plus courseId"
// @Success      200   {object}  courseMutationResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/v1/admin/course [put]
func (h *CourseHandler) Update(c echo.Context) error {
	adminID, err := subjectID(c)
	if err != nil {
		return err
	}

	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Incorrect Format"})
	}

	if err := h.service.Update(c.Request().Context(), ports.UpdateCourseInput{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		CreatorID:   adminID,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, courseMutationResponse{
		Message:  "Course Updated",
		CourseID: req.CourseID,
	})
}

// ListMine handles GET /api/v1/admin/course/bulk, listing the caller's own courses.
//
// @Summary      List own courses
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  courseListResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/v1/admin/course/bulk [get]
func (h *CourseHandler) ListMine(c echo.Context) error {
	adminID, err := subjectID(c)
	if err != nil {
		return err
	}

	courses, err := h.service.ListByCreator(c.Request().Context(), adminID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, courseListResponse{
		Message: "Courses Found",
		Courses: courses,
	})
}

// ListAll handles GET /api/v1/courses/course, the public catalog,
// unfiltered and unpaginated.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {object}  courseListResponse
// @Router       /api/v1/courses/course [get]
func (h *CourseHandler) ListAll(c echo.Context) error {
	courses, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, courseListResponse{Courses: courses})
}
