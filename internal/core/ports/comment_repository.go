package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// CommentRepository defines the persistence interface for post comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string, approvedOnly bool) ([]*domain.Comment, error)
	// List returns all comments; approved filters by moderation state when
	// non-nil.
	List(ctx context.Context, approved *bool) ([]*domain.Comment, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
	CountPending(ctx context.Context) (int64, error)
}
