package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blogging-platform/internal/core/domain"
	"github.com/inkwell/blogging-platform/internal/core/ports"
)

// PostService implements post CRUD with the ownership policy applied before
// every mutation.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

func (s *PostService) Create(ctx context.Context, actor domain.Actor, in ports.CreatePostInput) (*domain.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Content) == "" {
		return nil, domain.ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = domain.StatusPublished
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:     title,
		Content:   in.Content,
		AuthorID:  actor.ID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", actor.ID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", actor.ID).Str("status", string(created.Status)).Msg("post created")
	return created, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) ListPublished(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.List(ctx, ports.PostFilter{Status: domain.StatusPublished})
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error) {
	return s.repo.List(ctx, ports.PostFilter{AuthorID: authorID})
}

func (s *PostService) ListAll(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.List(ctx, ports.PostFilter{})
}

func (s *PostService) Update(ctx context.Context, actor domain.Actor, id string, in ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizePostWrite(actor, post); err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Status != nil {
		post.Status = *in.Status
	}
	post.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to update post")
		return nil, err
	}

	s.logger.Info().Str("post_id", id).Str("actor_id", actor.ID).Msg("post updated")
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizePostWrite(actor, post); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to delete post")
		return err
	}

	s.logger.Info().Str("post_id", id).Str("actor_id", actor.ID).Msg("post deleted")
	return nil
}
