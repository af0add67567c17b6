package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repository and view counter
// ---------------------------------------------------------------------------

type stubPostRepo struct {
	bySlug map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{bySlug: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	if _, ok := r.bySlug[p.Slug]; ok {
		return nil, domain.ErrSlugExists
	}
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("p%d", r.nextID)
	r.bySlug[clone.Slug] = &clone
	return &clone, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	for _, p := range r.bySlug {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) FindBySlug(_ context.Context, slug string) (*domain.Post, error) {
	p, ok := r.bySlug[slug]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) List(_ context.Context, f ports.ListPostsFilter) ([]*domain.Post, int64, error) {
	var matched []*domain.Post
	for _, p := range r.bySlug {
		if f.PublishedOnly && !p.Published {
			continue
		}
		if f.Tag != "" && !hasTag(p, f.Tag) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}
	return matched, int64(len(matched)), nil
}

func hasTag(p *domain.Post, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (r *stubPostRepo) Update(_ context.Context, p *domain.Post) error {
	for slug, existing := range r.bySlug {
		if existing.ID == p.ID {
			delete(r.bySlug, slug)
			clone := *p
			r.bySlug[p.Slug] = &clone
			return nil
		}
	}
	return domain.ErrPostNotFound
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	for slug, existing := range r.bySlug {
		if existing.ID == id {
			delete(r.bySlug, slug)
			return nil
		}
	}
	return domain.ErrPostNotFound
}

func (r *stubPostRepo) Count(_ context.Context, publishedOnly bool) (int64, error) {
	var n int64
	for _, p := range r.bySlug {
		if publishedOnly && !p.Published {
			continue
		}
		n++
	}
	return n, nil
}

type stubViewCounter struct {
	counts map[string]int64
	err    error
}

func newStubViewCounter() *stubViewCounter {
	return &stubViewCounter{counts: make(map[string]int64)}
}

func (v *stubViewCounter) Increment(_ context.Context, slug string) (int64, error) {
	if v.err != nil {
		return 0, v.err
	}
	v.counts[slug]++
	return v.counts[slug], nil
}

func (v *stubViewCounter) Get(_ context.Context, slug string) (int64, error) {
	if v.err != nil {
		return 0, v.err
	}
	return v.counts[slug], nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func publishedInput(slug string) ports.PostInput {
	return ports.PostInput{
		Slug:      slug,
		Title:     "A Title",
		Excerpt:   "excerpt",
		Content:   "content",
		Tags:      []string{"go"},
		Published: true,
	}
}

func TestPostService_Create_Success(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), newStubViewCounter(), discardLogger)

	post, err := svc.Create(context.Background(), publishedInput("hello-world"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.Slug != "hello-world" {
		t.Errorf("unexpected slug %q", post.Slug)
	}
	if post.PublishedAt.IsZero() {
		t.Error("published post must have PublishedAt set")
	}
}

func TestPostService_Create_DerivesSlugFromTitle(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), newStubViewCounter(), discardLogger)

	in := publishedInput("")
	in.Title = "Building a Portfolio, in Go!"
	post, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.Slug != "building-a-portfolio-in-go" {
		t.Errorf("unexpected derived slug %q", post.Slug)
	}
}

func TestPostService_Create_SlugConflict(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubViewCounter(), discardLogger)

	if _, err := svc.Create(context.Background(), publishedInput("taken")); err != nil {
		t.Fatalf("seed create: %v", err)
	}
	_, err := svc.Create(context.Background(), publishedInput("taken"))
	if !errors.Is(err, domain.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestPostService_GetBySlug_PublicCountsView(t *testing.T) {
	repo := newStubPostRepo()
	views := newStubViewCounter()
	svc := NewPostService(repo, views, discardLogger)

	if _, err := svc.Create(context.Background(), publishedInput("counted")); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	for want := int64(1); want <= 3; want++ {
		post, err := svc.GetBySlug(context.Background(), "counted", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post.Views != want {
			t.Errorf("expected %d views, got %d", want, post.Views)
		}
	}
}

func TestPostService_GetBySlug_AdminReadDoesNotCount(t *testing.T) {
	repo := newStubPostRepo()
	views := newStubViewCounter()
	svc := NewPostService(repo, views, discardLogger)

	if _, err := svc.Create(context.Background(), publishedInput("quiet")); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	if _, err := svc.GetBySlug(context.Background(), "quiet", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views.counts["quiet"] != 0 {
		t.Errorf("admin read must not count a view, got %d", views.counts["quiet"])
	}
}

func TestPostService_GetBySlug_DraftHiddenFromPublic(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubViewCounter(), discardLogger)

	in := publishedInput("draft")
	in.Published = false
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	if _, err := svc.GetBySlug(context.Background(), "draft", false); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound for public draft read, got %v", err)
	}
	if _, err := svc.GetBySlug(context.Background(), "draft", true); err != nil {
		t.Fatalf("admin draft read failed: %v", err)
	}
}

func TestPostService_GetBySlug_ViewCounterDown(t *testing.T) {
	repo := newStubPostRepo()
	views := newStubViewCounter()
	views.err = errors.New("redis unavailable")
	svc := NewPostService(repo, views, discardLogger)

	if _, err := svc.Create(context.Background(), publishedInput("resilient")); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	post, err := svc.GetBySlug(context.Background(), "resilient", false)
	if err != nil {
		t.Fatalf("read must survive a counter outage, got %v", err)
	}
	if post.Views != 0 {
		t.Errorf("expected zero views on counter outage, got %d", post.Views)
	}
}

func TestPostService_SetPublished_StampsPublishedAt(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubViewCounter(), discardLogger)

	in := publishedInput("later")
	in.Published = false
	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("seed create: %v", err)
	}

	post, err := svc.SetPublished(context.Background(), created.ID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !post.Published || post.PublishedAt.IsZero() {
		t.Errorf("expected published with timestamp, got %+v", post)
	}
}

func TestPostService_List_DefaultsPagination(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubViewCounter(), discardLogger)

	page, err := svc.List(context.Background(), ports.ListPostsFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 1 || page.Limit != defaultPageSize {
		t.Errorf("expected page=1 limit=%d, got page=%d limit=%d", defaultPageSize, page.Page, page.Limit)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":         "hello-world",
		"  spaced   out  ":      "spaced-out",
		"Go 1.22 Release Notes": "go-1-22-release-notes",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
