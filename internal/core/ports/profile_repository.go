package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// ProjectRepository defines the persistence interface for showcase projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, featuredOnly bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// SkillRepository defines the persistence interface for skills.
type SkillRepository interface {
	Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	List(ctx context.Context) ([]*domain.Skill, error)
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id string) error
}

// CertificateRepository defines the persistence interface for certificates.
type CertificateRepository interface {
	Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, error)
	List(ctx context.Context) ([]*domain.Certificate, error)
	Update(ctx context.Context, c *domain.Certificate) error
	Delete(ctx context.Context, id string) error
}

// ResumeRepository defines the persistence interface for resume entries.
type ResumeRepository interface {
	Create(ctx context.Context, e *domain.ResumeEntry) (*domain.ResumeEntry, error)
	List(ctx context.Context, kind domain.ResumeKind) ([]*domain.ResumeEntry, error)
	Update(ctx context.Context, e *domain.ResumeEntry) error
	Delete(ctx context.Context, id string) error
}
