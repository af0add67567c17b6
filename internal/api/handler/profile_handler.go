package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// ProfileHandler serves the static portfolio content: projects, skills,
// certificates and the resume timeline.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// --- Projects ---

// ListProjects supports ?featured=true for the landing page.
func (h *ProfileHandler) ListProjects(c echo.Context) error {
	featuredOnly, _ := strconv.ParseBool(c.QueryParam("featured"))
	projects, err := h.service.ListProjects(c.Request().Context(), featuredOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: projects})
}

func (h *ProfileHandler) GetProject(c echo.Context) error {
	project, err := h.service.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: project})
}

func (h *ProfileHandler) CreateProject(c echo.Context) error {
	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	project, err := h.service.CreateProject(c.Request().Context(), projectInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: project})
}

func (h *ProfileHandler) UpdateProject(c echo.Context) error {
	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	project, err := h.service.UpdateProject(c.Request().Context(), c.Param("id"), projectInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: project})
}

func (h *ProfileHandler) DeleteProject(c echo.Context) error {
	if err := h.service.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// --- Skills ---

func (h *ProfileHandler) ListSkills(c echo.Context) error {
	skills, err := h.service.ListSkills(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: skills})
}

func (h *ProfileHandler) CreateSkill(c echo.Context) error {
	var req skillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	skill, err := h.service.CreateSkill(c.Request().Context(), skillInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: skill})
}

func (h *ProfileHandler) UpdateSkill(c echo.Context) error {
	var req skillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	skill, err := h.service.UpdateSkill(c.Request().Context(), c.Param("id"), skillInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: skill})
}

func (h *ProfileHandler) DeleteSkill(c echo.Context) error {
	if err := h.service.DeleteSkill(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// --- Certificates ---

func (h *ProfileHandler) ListCertificates(c echo.Context) error {
	certs, err := h.service.ListCertificates(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: certs})
}

func (h *ProfileHandler) CreateCertificate(c echo.Context) error {
	var req certificateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cert, err := h.service.CreateCertificate(c.Request().Context(), certificateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: cert})
}

func (h *ProfileHandler) UpdateCertificate(c echo.Context) error {
	var req certificateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cert, err := h.service.UpdateCertificate(c.Request().Context(), c.Param("id"), certificateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: cert})
}

func (h *ProfileHandler) DeleteCertificate(c echo.Context) error {
	if err := h.service.DeleteCertificate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// --- Resume ---

// GetResume returns both timeline sections in one payload.
func (h *ProfileHandler) GetResume(c echo.Context) error {
	resume, err := h.service.GetResume(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: resume})
}

func (h *ProfileHandler) CreateResumeEntry(c echo.Context) error {
	var req resumeEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	entry, err := h.service.CreateResumeEntry(c.Request().Context(), resumeEntryInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: entry})
}

func (h *ProfileHandler) UpdateResumeEntry(c echo.Context) error {
	var req resumeEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	entry, err := h.service.UpdateResumeEntry(c.Request().Context(), c.Param("id"), resumeEntryInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: entry})
}

func (h *ProfileHandler) DeleteResumeEntry(c echo.Context) error {
	if err := h.service.DeleteResumeEntry(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func projectInput(req projectRequest) ports.ProjectInput {
	return ports.ProjectInput{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		RepoURL:     req.RepoURL,
		LiveURL:     req.LiveURL,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
	}
}

func skillInput(req skillRequest) ports.SkillInput {
	return ports.SkillInput{
		Name:      req.Name,
		Category:  req.Category,
		Level:     req.Level,
		SortOrder: req.SortOrder,
	}
}

func certificateInput(req certificateRequest) ports.CertificateInput {
	return ports.CertificateInput{
		Title:         req.Title,
		Issuer:        req.Issuer,
		IssueDate:     req.IssueDate,
		CredentialURL: req.CredentialURL,
		SortOrder:     req.SortOrder,
	}
}

func resumeEntryInput(req resumeEntryRequest) ports.ResumeEntryInput {
	return ports.ResumeEntryInput{
		Kind:         req.Kind,
		Title:        req.Title,
		Organization: req.Organization,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Description:  req.Description,
		SortOrder:    req.SortOrder,
	}
}
