package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inkwell/blogging-platform/internal/core/domain"
	"github.com/inkwell/blogging-platform/internal/core/ports"
)

// AdminService implements the admin-only user-management operations.
type AdminService struct {
	users  ports.UserRepository
	posts  ports.PostRepository
	logger zerolog.Logger
}

func NewAdminService(users ports.UserRepository, posts ports.PostRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, posts: posts, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) ChangeRole(ctx context.Context, actor domain.Actor, targetID string, role domain.Role) (*domain.User, error) {
	if err := domain.AuthorizeUserManagement(actor, targetID); err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", targetID).Str("role", string(role)).Str("actor_id", actor.ID).Msg("role changed")
	return updated, nil
}

// DeleteUser removes the target identity, then its posts. The two store
// operations are sequential with no transaction: a crash in between can leave
// orphaned posts. Best-effort semantics, per the account-deletion contract.
func (s *AdminService) DeleteUser(ctx context.Context, actor domain.Actor, targetID string) error {
	if err := domain.AuthorizeUserManagement(actor, targetID); err != nil {
		return err
	}

	// Resolve first so a bad id reports not-found before anything is removed.
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, target.ID); err != nil {
		return err
	}

	deleted, err := s.posts.DeleteByAuthor(ctx, target.ID)
	if err != nil {
		// The identity is already gone; surface the partial failure loudly
		// but do not fail the request, the account deletion itself succeeded.
		s.logger.Error().Err(err).Str("user_id", target.ID).Msg("cascade post deletion failed, orphaned posts may remain")
		return nil
	}

	s.logger.Info().Str("user_id", target.ID).Int64("posts_deleted", deleted).Str("actor_id", actor.ID).Msg("user deleted")
	return nil
}

func (s *AdminService) Stats(ctx context.Context) (*ports.Stats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	adminUsers, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	totalPosts, err := s.posts.Count(ctx)
	if err != nil {
		return nil, err
	}
	published, err := s.posts.CountByStatus(ctx, domain.StatusPublished)
	if err != nil {
		return nil, err
	}
	drafts, err := s.posts.CountByStatus(ctx, domain.StatusDraft)
	if err != nil {
		return nil, err
	}

	return &ports.Stats{
		TotalUsers:     totalUsers,
		TotalPosts:     totalPosts,
		PublishedPosts: published,
		DraftPosts:     drafts,
		AdminUsers:     adminUsers,
	}, nil
}
