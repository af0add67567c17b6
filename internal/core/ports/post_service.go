package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// PostInput carries the writable fields of a post.
type PostInput struct {
	Slug       string
	Title      string
	Excerpt    string
	Content    string
	Tags       []string
	CoverImage string
	Published  bool
}

// PostPage is one page of a post listing.
type PostPage struct {
	Posts      []*domain.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type PostService interface {
	// List returns published posts for public callers; admin listings pass
	// publishedOnly=false to include drafts.
	List(ctx context.Context, filter ListPostsFilter) (*PostPage, error)
	// GetBySlug returns a post with its view counter merged in. Public
	// callers only see published posts; each public read counts a view.
	GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*domain.Post, error)
	Create(ctx context.Context, in PostInput) (*domain.Post, error)
	Update(ctx context.Context, id string, in PostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) (*domain.Post, error)
}
