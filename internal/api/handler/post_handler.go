package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// PostHandler serves the public blog endpoints and the admin post CRUD.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List returns published posts, newest first, paginated. Supports
// ?tag=, ?page= and ?limit= query parameters.
func (h *PostHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.ListPostsFilter{
		Tag:           c.QueryParam("tag"),
		PublishedOnly: true,
		Page:          queryInt(c, "page"),
		Limit:         queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pageResponse(page))
}

// GetBySlug returns a single published post by slug. Every hit counts one
// view.
func (h *PostHandler) GetBySlug(c echo.Context) error {
	post, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"), false)
	if err != nil {
		return err
	}
	metrics.PostViewsTotal.Inc()
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: post})
}

// AdminList returns all posts including drafts.
func (h *PostHandler) AdminList(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.ListPostsFilter{
		Tag:   c.QueryParam("tag"),
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pageResponse(page))
}

// AdminGetBySlug returns a single post by slug, draft or not, without
// counting a view.
func (h *PostHandler) AdminGetBySlug(c echo.Context) error {
	post, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: post})
}

func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), postInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: post})
}

func (h *PostHandler) Update(c echo.Context) error {
	var req postRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), postInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: post})
}

func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Publish flips the published flag. The desired state rides in the body as
// {"published": bool}; an empty body means publish.
func (h *PostHandler) Publish(c echo.Context) error {
	req := struct {
		Published *bool `json:"published"`
	}{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post, err := h.service.SetPublished(c.Request().Context(), c.Param("id"), published)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: post})
}

func postInput(req postRequest) ports.PostInput {
	return ports.PostInput{
		Slug:       req.Slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Tags:       req.Tags,
		CoverImage: req.CoverImage,
		Published:  req.Published,
	}
}

func pageResponse(page *ports.PostPage) listPostsResponse {
	return listPostsResponse{
		Success: true,
		Data:    page.Posts,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	}
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed so the service can apply its defaults.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}
