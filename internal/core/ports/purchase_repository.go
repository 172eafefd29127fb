package ports

import (
	"context"

	"github.com/skillforge/course-platform/internal/core/domain"
)

// PurchaseRepository defines persistence for the append-only purchase log.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	ListByUser(ctx context.Context, userID string) ([]domain.Purchase, error)
}
