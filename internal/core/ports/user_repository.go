package ports

import (
	"context"

	"github.com/inkwell/blogging-platform/internal/core/domain"
)

// UserRepository defines persistence operations for user identities.
// Email uniqueness is enforced at this layer (unique index).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID retrieves a user by id. A malformed id behaves as not found.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
