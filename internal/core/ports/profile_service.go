package ports

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// ProjectInput carries the writable fields of a project.
type ProjectInput struct {
	Slug        string
	Title       string
	Description string
	TechStack   []string
	RepoURL     string
	LiveURL     string
	Featured    bool
	SortOrder   int
}

// SkillInput carries the writable fields of a skill.
type SkillInput struct {
	Name      string
	Category  string
	Level     int
	SortOrder int
}

// CertificateInput carries the writable fields of a certificate.
type CertificateInput struct {
	Title         string
	Issuer        string
	IssueDate     time.Time
	CredentialURL string
	SortOrder     int
}

// ResumeEntryInput carries the writable fields of a resume entry.
type ResumeEntryInput struct {
	Kind         string
	Title        string
	Organization string
	Location     string
	StartDate    time.Time
	EndDate      time.Time
	Description  string
	SortOrder    int
}

// Resume groups the two timeline sections returned by GET /api/resume.
type Resume struct {
	Education  []*domain.ResumeEntry `json:"education"`
	Experience []*domain.ResumeEntry `json:"experience"`
}

// ProfileService manages the static portfolio content: projects, skills,
// certificates and the resume timeline.
type ProfileService interface {
	ListProjects(ctx context.Context, featuredOnly bool) ([]*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, in ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, in ProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListSkills(ctx context.Context) ([]*domain.Skill, error)
	CreateSkill(ctx context.Context, in SkillInput) (*domain.Skill, error)
	UpdateSkill(ctx context.Context, id string, in SkillInput) (*domain.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	ListCertificates(ctx context.Context) ([]*domain.Certificate, error)
	CreateCertificate(ctx context.Context, in CertificateInput) (*domain.Certificate, error)
	UpdateCertificate(ctx context.Context, id string, in CertificateInput) (*domain.Certificate, error)
	DeleteCertificate(ctx context.Context, id string) error

	GetResume(ctx context.Context) (*Resume, error)
	CreateResumeEntry(ctx context.Context, in ResumeEntryInput) (*domain.ResumeEntry, error)
	UpdateResumeEntry(ctx context.Context, id string, in ResumeEntryInput) (*domain.ResumeEntry, error)
	DeleteResumeEntry(ctx context.Context, id string) error
}
