package handler

import "github.com/skillforge/course-platform/internal/core/domain"

type createCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
	// CreatorID is accepted in the payload but always discarded; the creator
	// is the authenticated admin.
	CreatorID string `json:"creatorId"`
}

type updateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
	CourseID    string  `json:"courseId"`
}

type courseMutationResponse struct {
	Message  string `json:"message"`
	CourseID string `json:"courseId"`
}

type courseListResponse struct {
	Message string          `json:"message,omitempty"`
	Courses []domain.Course `json:"course"`
}
