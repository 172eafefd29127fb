package ports

import (
	"context"

	"github.com/skillforge/course-platform/internal/core/domain"
)

// CourseRepository defines persistence operations for catalog entries.
type CourseRepository interface {
	// Create inserts a new course and returns its generated id.
	Create(ctx context.Context, course *domain.Course) (string, error)
	// UpdateOwned overwrites the mutable fields of the course matching both
	// courseID and creatorID. A non-matching pair updates zero documents and
	// is not an error.
	UpdateOwned(ctx context.Context, courseID, creatorID string, fields domain.Course) error
	// ListByCreator returns every course whose creatorId matches.
	ListByCreator(ctx context.Context, creatorID string) ([]domain.Course, error)
	// ListAll returns the entire catalog, unfiltered and unpaginated.
	ListAll(ctx context.Context) ([]domain.Course, error)
	// FindByIDs returns all courses whose id is in ids. Unknown ids are
	// silently skipped.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Course, error)
}
