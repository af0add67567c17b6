package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// ListPostsFilter narrows and paginates post listings.
type ListPostsFilter struct {
	Tag           string
	PublishedOnly bool
	Page          int
	Limit         int
}

// PostRepository defines the persistence interface for blog posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Post, error)
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, publishedOnly bool) (int64, error)
}
