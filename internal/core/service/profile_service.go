package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// ProfileService manages projects, skills, certificates and resume entries.
type ProfileService struct {
	projects ports.ProjectRepository
	skills   ports.SkillRepository
	certs    ports.CertificateRepository
	resume   ports.ResumeRepository
	log      zerolog.Logger
}

func NewProfileService(
	projects ports.ProjectRepository,
	skills ports.SkillRepository,
	certs ports.CertificateRepository,
	resume ports.ResumeRepository,
	log zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		projects: projects,
		skills:   skills,
		certs:    certs,
		resume:   resume,
		log:      log,
	}
}

// --- Projects ---

func (s *ProfileService) ListProjects(ctx context.Context, featuredOnly bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, featuredOnly)
}

func (s *ProfileService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ProfileService) CreateProject(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}
	now := time.Now().UTC()
	p := &domain.Project{
		Slug:        slug,
		Title:       in.Title,
		Description: in.Description,
		TechStack:   in.TechStack,
		RepoURL:     in.RepoURL,
		LiveURL:     in.LiveURL,
		Featured:    in.Featured,
		SortOrder:   in.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.projects.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("project_id", created.ID).Str("slug", created.Slug).Msg("project created")
	return created, nil
}

func (s *ProfileService) UpdateProject(ctx context.Context, id string, in ports.ProjectInput) (*domain.Project, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Slug != "" {
		p.Slug = in.Slug
	}
	p.Title = in.Title
	p.Description = in.Description
	p.TechStack = in.TechStack
	p.RepoURL = in.RepoURL
	p.LiveURL = in.LiveURL
	p.Featured = in.Featured
	p.SortOrder = in.SortOrder
	p.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) DeleteProject(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

// --- Skills ---

func (s *ProfileService) ListSkills(ctx context.Context) ([]*domain.Skill, error) {
	return s.skills.List(ctx)
}

func (s *ProfileService) CreateSkill(ctx context.Context, in ports.SkillInput) (*domain.Skill, error) {
	return s.skills.Create(ctx, &domain.Skill{
		Name:      in.Name,
		Category:  in.Category,
		Level:     in.Level,
		SortOrder: in.SortOrder,
	})
}

func (s *ProfileService) UpdateSkill(ctx context.Context, id string, in ports.SkillInput) (*domain.Skill, error) {
	sk := &domain.Skill{
		ID:        id,
		Name:      in.Name,
		Category:  in.Category,
		Level:     in.Level,
		SortOrder: in.SortOrder,
	}
	if err := s.skills.Update(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

func (s *ProfileService) DeleteSkill(ctx context.Context, id string) error {
	return s.skills.Delete(ctx, id)
}

// --- Certificates ---

func (s *ProfileService) ListCertificates(ctx context.Context) ([]*domain.Certificate, error) {
	return s.certs.List(ctx)
}

func (s *ProfileService) CreateCertificate(ctx context.Context, in ports.CertificateInput) (*domain.Certificate, error) {
	return s.certs.Create(ctx, &domain.Certificate{
		Title:         in.Title,
		Issuer:        in.Issuer,
		IssueDate:     in.IssueDate,
		CredentialURL: in.CredentialURL,
		SortOrder:     in.SortOrder,
	})
}

func (s *ProfileService) UpdateCertificate(ctx context.Context, id string, in ports.CertificateInput) (*domain.Certificate, error) {
	c := &domain.Certificate{
		ID:            id,
		Title:         in.Title,
		Issuer:        in.Issuer,
		IssueDate:     in.IssueDate,
		CredentialURL: in.CredentialURL,
		SortOrder:     in.SortOrder,
	}
	if err := s.certs.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ProfileService) DeleteCertificate(ctx context.Context, id string) error {
	return s.certs.Delete(ctx, id)
}

// --- Resume ---

func (s *ProfileService) GetResume(ctx context.Context) (*ports.Resume, error) {
	education, err := s.resume.List(ctx, domain.ResumeEducation)
	if err != nil {
		return nil, err
	}
	experience, err := s.resume.List(ctx, domain.ResumeExperience)
	if err != nil {
		return nil, err
	}
	return &ports.Resume{Education: education, Experience: experience}, nil
}

func (s *ProfileService) CreateResumeEntry(ctx context.Context, in ports.ResumeEntryInput) (*domain.ResumeEntry, error) {
	kind := domain.ResumeKind(in.Kind)
	if !kind.Valid() {
		return nil, domain.ErrInvalidResumeKind
	}
	return s.resume.Create(ctx, &domain.ResumeEntry{
		Kind:         kind,
		Title:        in.Title,
		Organization: in.Organization,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		SortOrder:    in.SortOrder,
	})
}

func (s *ProfileService) UpdateResumeEntry(ctx context.Context, id string, in ports.ResumeEntryInput) (*domain.ResumeEntry, error) {
	kind := domain.ResumeKind(in.Kind)
	if !kind.Valid() {
		return nil, domain.ErrInvalidResumeKind
	}
	e := &domain.ResumeEntry{
		ID:           id,
		Kind:         kind,
		Title:        in.Title,
		Organization: in.Organization,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		SortOrder:    in.SortOrder,
	}
	if err := s.resume.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ProfileService) DeleteResumeEntry(ctx context.Context, id string) error {
	return s.resume.Delete(ctx, id)
}
