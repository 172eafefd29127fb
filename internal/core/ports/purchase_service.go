package ports

import (
	"context"

	"github.com/skillforge/course-platform/internal/core/domain"
)

// UserPurchases is the full view returned when a user lists their purchases:
// the raw purchase records plus the catalog details of every purchased course.
type UserPurchases struct {
	Purchases []domain.Purchase
	Courses   []domain.Course
}

// PurchaseService defines use-case operations for purchases.
type PurchaseService interface {
	// Record appends a purchase linking userID to courseID. Neither reference
	// is validated and no payment is checked.
	Record(ctx context.Context, userID, courseID string) error
	ListForUser(ctx context.Context, userID string) (*UserPurchases, error)
}
