package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// ViewCounter abstracts the per-post view tally (Redis).
type ViewCounter interface {
	Increment(ctx context.Context, slug string) (int64, error)
	Get(ctx context.Context, slug string) (int64, error)
}

type PostService struct {
	repo  ports.PostRepository
	views ViewCounter
	log   zerolog.Logger
}

func NewPostService(repo ports.PostRepository, views ViewCounter, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, views: views, log: log}
}

func (s *PostService) List(ctx context.Context, filter ports.ListPostsFilter) (*ports.PostPage, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	posts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, p := range posts {
		p.Views = s.viewsFor(ctx, p.Slug)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.PostPage{
		Posts:      posts,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetBySlug fetches a post. Public reads (includeDrafts=false) only see
// published posts and count a view; admin reads leave the counter untouched.
func (s *PostService) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*domain.Post, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published && !includeDrafts {
		return nil, domain.ErrPostNotFound
	}

	if includeDrafts {
		post.Views = s.viewsFor(ctx, post.Slug)
		return post, nil
	}

	n, err := s.views.Increment(ctx, post.Slug)
	if err != nil {
		s.log.Warn().Err(err).Str("slug", post.Slug).Msg("view counter unavailable")
		n = 0
	}
	post.Views = n
	return post, nil
}

func (s *PostService) Create(ctx context.Context, in ports.PostInput) (*domain.Post, error) {
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}

	if _, err := s.repo.FindBySlug(ctx, slug); err == nil {
		return nil, domain.ErrSlugExists
	} else if !errors.Is(err, domain.ErrPostNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Slug:       slug,
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		Tags:       in.Tags,
		CoverImage: in.CoverImage,
		Published:  in.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.Published {
		post.PublishedAt = now
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", created.Slug).Bool("published", created.Published).Msg("post created")
	return created, nil
}

func (s *PostService) Update(ctx context.Context, id string, in ports.PostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Slug != "" && in.Slug != post.Slug {
		if existing, err := s.repo.FindBySlug(ctx, in.Slug); err == nil && existing.ID != id {
			return nil, domain.ErrSlugExists
		} else if err != nil && !errors.Is(err, domain.ErrPostNotFound) {
			return nil, err
		}
		post.Slug = in.Slug
	}

	now := time.Now().UTC()
	if in.Published && !post.Published {
		post.PublishedAt = now
	}
	post.Title = in.Title
	post.Excerpt = in.Excerpt
	post.Content = in.Content
	post.Tags = in.Tags
	post.CoverImage = in.CoverImage
	post.Published = in.Published
	post.UpdatedAt = now

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PostService) SetPublished(ctx context.Context, id string, published bool) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if published && !post.Published {
		post.PublishedAt = now
	}
	post.Published = published
	post.UpdatedAt = now

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) viewsFor(ctx context.Context, slug string) int64 {
	n, err := s.views.Get(ctx, slug)
	if err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("view counter unavailable")
		return 0
	}
	return n
}

var slugScrub = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	s := slugScrub.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
