package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	log      zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, log zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, log: log}
}

// Submit attaches a new comment to a published post. Comments enter the
// moderation queue unapproved.
func (s *CommentService) Submit(ctx context.Context, slug string, in ports.CommentInput) (*domain.Comment, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, domain.ErrPostNotFound
	}

	comment := &domain.Comment{
		PostID:    post.ID,
		Author:    in.Author,
		Email:     in.Email,
		Body:      in.Body,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Str("comment_id", created.ID).Msg("comment submitted")
	return created, nil
}

func (s *CommentService) ListForPost(ctx context.Context, slug string) ([]*domain.Comment, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, domain.ErrPostNotFound
	}
	return s.comments.ListByPost(ctx, post.ID, true)
}

func (s *CommentService) ListAll(ctx context.Context, state string) ([]*domain.Comment, error) {
	var approved *bool
	switch state {
	case "pending":
		v := false
		approved = &v
	case "approved":
		v := true
		approved = &v
	}
	return s.comments.List(ctx, approved)
}

func (s *CommentService) Approve(ctx context.Context, id string) error {
	return s.comments.SetApproved(ctx, id, true)
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	return s.comments.Delete(ctx, id)
}
