package ports

import (
	"context"

	"github.com/inkwell/blogging-platform/internal/core/domain"
)

// PostFilter narrows a post listing. Zero values mean no filter.
type PostFilter struct {
	Status   domain.PostStatus // optional: filter by visibility state
	AuthorID string            // optional: filter by author
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// FindByID retrieves a post by id. A malformed id behaves as not found.
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns posts matching filter, newest first, with author name and
	// email resolved onto each post.
	List(ctx context.Context, filter PostFilter) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	// DeleteByAuthor removes every post owned by authorID and reports how
	// many were deleted. Used by the account-deletion cascade.
	DeleteByAuthor(ctx context.Context, authorID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.PostStatus) (int64, error)
}
