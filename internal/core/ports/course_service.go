package ports

import (
	"context"

	"github.com/skillforge/course-platform/internal/core/domain"
)

// CreateCourseInput carries all data needed to create a catalog entry.
// CreatorID is always the authenticated admin id; any creator supplied in the
// request body is discarded before this struct is built.
type CreateCourseInput struct {
	Title       string
	Description string
	ImageURL    string
	Price       float64
	CreatorID   string
}

// UpdateCourseInput carries a full-field overwrite of an existing course.
type UpdateCourseInput struct {
	CourseID    string
	Title       string
	Description string
	ImageURL    string
	Price       float64
	CreatorID   string
}

// CourseService defines use-case operations for the catalog.
type CourseService interface {
	Create(ctx context.Context, in CreateCourseInput) (string, error)
	Update(ctx context.Context, in UpdateCourseInput) error
	// ListByCreator returns the admin's own courses only.
	ListByCreator(ctx context.Context, creatorID string) ([]domain.Course, error)
	// ListAll returns the public catalog.
	ListAll(ctx context.Context) ([]domain.Course, error)
}
