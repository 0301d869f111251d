package ports

import (
	"context"

	"github.com/inkwell/blogging-platform/internal/core/domain"
)

// CreatePostInput carries the data for a new post. Status defaults to
// published when empty.
type CreatePostInput struct {
	Title   string
	Content string
	Status  domain.PostStatus
}

// UpdatePostInput is a partial update: nil fields are left untouched.
type UpdatePostInput struct {
	Title   *string
	Content *string
	Status  *domain.PostStatus
}

// PostService defines use-case operations on posts. Operations taking an
// Actor enforce the ownership policy; the rest are public reads.
type PostService interface {
	Create(ctx context.Context, actor domain.Actor, in CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	// ListPublished is the anonymous listing: published posts only.
	ListPublished(ctx context.Context) ([]*domain.Post, error)
	// ListByAuthor returns every post of one author regardless of status.
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error)
	// ListAll returns every post regardless of status (admin listing).
	ListAll(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, actor domain.Actor, id string, in UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
