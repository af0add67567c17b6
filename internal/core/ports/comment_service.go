package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// CommentInput carries a visitor-submitted comment.
type CommentInput struct {
	Author string
	Email  string
	Body   string
}

type CommentService interface {
	// Submit attaches a new, unapproved comment to the post with the given
	// slug. Unknown or unpublished slugs yield domain.ErrPostNotFound.
	Submit(ctx context.Context, slug string, in CommentInput) (*domain.Comment, error)
	// ListForPost returns the approved comments of a published post.
	ListForPost(ctx context.Context, slug string) ([]*domain.Comment, error)
	// ListAll is the moderation queue; state is "", "pending" or "approved".
	ListAll(ctx context.Context, state string) ([]*domain.Comment, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
