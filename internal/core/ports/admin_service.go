package ports

import (
	"context"

	"github.com/inkwell/blogging-platform/internal/core/domain"
)

// Stats is the admin dashboard aggregate. TotalPosts always equals
// PublishedPosts + DraftPosts.
type Stats struct {
	TotalUsers     int64
	TotalPosts     int64
	PublishedPosts int64
	DraftPosts     int64
	AdminUsers     int64
}

// AdminService defines the admin-only user-management operations.
type AdminService interface {
	// ListUsers returns all identities with credentials excluded.
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// ChangeRole sets the target's role. Denied with ErrSelfModification when
	// the target is the acting admin.
	ChangeRole(ctx context.Context, actor domain.Actor, targetID string, role domain.Role) (*domain.User, error)
	// DeleteUser removes the target identity and cascades to its posts.
	// Denied with ErrSelfModification when the target is the acting admin.
	DeleteUser(ctx context.Context, actor domain.Actor, targetID string) error
	Stats(ctx context.Context) (*Stats, error)
}
