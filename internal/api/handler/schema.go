package handler

import (
	"time"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// successResponse is the minimal success envelope.
type successResponse struct {
	Success bool `json:"success"`
}

// dataResponse wraps any payload in the success envelope.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token"`
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required"`
}

// --- Posts ---

type postRequest struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"   validate:"required"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content" validate:"required"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"cover_image"`
	Published  bool     `json:"published"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listPostsResponse struct {
	Success    bool               `json:"success"`
	Data       []*domain.Post     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// --- Comments ---

type commentRequest struct {
	Author string `json:"author" validate:"required"`
	Email  string `json:"email"  validate:"omitempty,email"`
	Body   string `json:"body"   validate:"required,max=2000"`
}

// --- Contact ---

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body"    validate:"required,max=5000"`
}

type contactAcceptedResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
}

// --- Profile ---

type projectRequest struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	TechStack   []string `json:"tech_stack"`
	RepoURL     string   `json:"repo_url"`
	LiveURL     string   `json:"live_url"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sort_order"`
}

type skillRequest struct {
	Name      string `json:"name"     validate:"required"`
	Category  string `json:"category" validate:"required"`
	Level     int    `json:"level"    validate:"required,min=1,max=100"`
	SortOrder int    `json:"sort_order"`
}

type certificateRequest struct {
	Title         string    `json:"title"      validate:"required"`
	Issuer        string    `json:"issuer"     validate:"required"`
	IssueDate     time.Time `json:"issue_date" validate:"required"`
	CredentialURL string    `json:"credential_url"`
	SortOrder     int       `json:"sort_order"`
}

type resumeEntryRequest struct {
	Kind         string    `json:"kind"         validate:"required,oneof=education experience"`
	Title        string    `json:"title"        validate:"required"`
	Organization string    `json:"organization" validate:"required"`
	Location     string    `json:"location"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date"`
	Description  string    `json:"description"`
	SortOrder    int       `json:"sort_order"`
}
