package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

type stubProjectRepo struct {
	projects map[string]*domain.Project
	nextID   int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project), nextID: 1}
}

func (r *stubProjectRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	p.ID = "project-" + strconv.Itoa(r.nextID)
	r.nextID++
	r.projects[p.ID] = p
	return p, nil
}

func (r *stubProjectRepo) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

func (r *stubProjectRepo) List(ctx context.Context, featuredOnly bool) ([]*domain.Project, error) {
	out := make([]*domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if featuredOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	r.projects[p.ID] = p
	return nil
}

func (r *stubProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *stubProjectRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.projects)), nil
}

type stubSkillRepo struct{ skills []*domain.Skill }

func (r *stubSkillRepo) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	s.ID = "skill-1"
	r.skills = append(r.skills, s)
	return s, nil
}

func (r *stubSkillRepo) List(ctx context.Context) ([]*domain.Skill, error) { return r.skills, nil }
func (r *stubSkillRepo) Update(ctx context.Context, s *domain.Skill) error { return nil }
func (r *stubSkillRepo) Delete(ctx context.Context, id string) error       { return nil }

type stubCertRepo struct{ certs []*domain.Certificate }

func (r *stubCertRepo) Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, error) {
	c.ID = "cert-1"
	r.certs = append(r.certs, c)
	return c, nil
}

func (r *stubCertRepo) List(ctx context.Context) ([]*domain.Certificate, error) {
	return r.certs, nil
}
func (r *stubCertRepo) Update(ctx context.Context, c *domain.Certificate) error { return nil }
func (r *stubCertRepo) Delete(ctx context.Context, id string) error             { return nil }

type stubResumeRepo struct{ entries []*domain.ResumeEntry }

func (r *stubResumeRepo) Create(ctx context.Context, e *domain.ResumeEntry) (*domain.ResumeEntry, error) {
	e.ID = "entry-1"
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *stubResumeRepo) List(ctx context.Context, kind domain.ResumeKind) ([]*domain.ResumeEntry, error) {
	out := []*domain.ResumeEntry{}
	for _, e := range r.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubResumeRepo) Update(ctx context.Context, e *domain.ResumeEntry) error { return nil }
func (r *stubResumeRepo) Delete(ctx context.Context, id string) error             { return nil }

func newProfileService(projects *stubProjectRepo, resume *stubResumeRepo) *ProfileService {
	if projects == nil {
		projects = newStubProjectRepo()
	}
	if resume == nil {
		resume = &stubResumeRepo{}
	}
	return NewProfileService(projects, &stubSkillRepo{}, &stubCertRepo{}, resume, discardLogger)
}

func TestCreateProjectDerivesSlug(t *testing.T) {
	svc := newProfileService(nil, nil)

	p, err := svc.CreateProject(context.Background(), ports.ProjectInput{
		Title:       "My Side Project",
		Description: "A thing",
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if p.Slug != "my-side-project" {
		t.Errorf("slug = %q, want my-side-project", p.Slug)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("timestamps must be stamped on create")
	}
}

func TestListProjectsFeaturedFilter(t *testing.T) {
	repo := newStubProjectRepo()
	svc := newProfileService(repo, nil)

	_, _ = svc.CreateProject(context.Background(), ports.ProjectInput{Title: "A", Description: "d", Featured: true})
	_, _ = svc.CreateProject(context.Background(), ports.ProjectInput{Title: "B", Description: "d"})

	featured, err := svc.ListProjects(context.Background(), true)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(featured) != 1 {
		t.Fatalf("featured count = %d, want 1", len(featured))
	}
	if featured[0].Title != "A" {
		t.Errorf("featured project = %q, want A", featured[0].Title)
	}
}

func TestUpdateProjectUnknownID(t *testing.T) {
	svc := newProfileService(nil, nil)

	_, err := svc.UpdateProject(context.Background(), "missing", ports.ProjectInput{Title: "X", Description: "d"})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestCreateResumeEntryRejectsUnknownKind(t *testing.T) {
	svc := newProfileService(nil, nil)

	_, err := svc.CreateResumeEntry(context.Background(), ports.ResumeEntryInput{
		Kind:         "hobby",
		Title:        "Chess",
		Organization: "Local club",
		StartDate:    time.Now(),
	})
	if !errors.Is(err, domain.ErrInvalidResumeKind) {
		t.Fatalf("err = %v, want ErrInvalidResumeKind", err)
	}
}

func TestGetResumeGroupsByKind(t *testing.T) {
	resume := &stubResumeRepo{}
	svc := newProfileService(nil, resume)

	ctx := context.Background()
	_, _ = svc.CreateResumeEntry(ctx, ports.ResumeEntryInput{
		Kind: "education", Title: "BSc", Organization: "University", StartDate: time.Now(),
	})
	_, _ = svc.CreateResumeEntry(ctx, ports.ResumeEntryInput{
		Kind: "experience", Title: "Engineer", Organization: "Acme", StartDate: time.Now(),
	})
	_, _ = svc.CreateResumeEntry(ctx, ports.ResumeEntryInput{
		Kind: "experience", Title: "Senior Engineer", Organization: "Acme", StartDate: time.Now(),
	})

	got, err := svc.GetResume(ctx)
	if err != nil {
		t.Fatalf("get resume: %v", err)
	}
	if len(got.Education) != 1 {
		t.Errorf("education count = %d, want 1", len(got.Education))
	}
	if len(got.Experience) != 2 {
		t.Errorf("experience count = %d, want 2", len(got.Experience))
	}
}
