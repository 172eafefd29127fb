package ports

import (
	"context"

	"github.com/skillforge/course-platform/internal/core/domain"
)

// AccountRepository defines the interface for credential persistence. One
// instance exists per namespace (users, admins), each bound to its own
// collection.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
