package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// CommentHandler serves visitor comment submission and the admin moderation
// queue.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Submit attaches a new comment to a published post. Comments start out
// unapproved and stay invisible until moderated.
func (h *CommentHandler) Submit(c echo.Context) error {
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.Submit(c.Request().Context(), c.Param("slug"), ports.CommentInput{
		Author: req.Author,
		Email:  req.Email,
		Body:   req.Body,
	})
	if err != nil {
		return err
	}
	metrics.CommentsTotal.WithLabelValues("submitted").Inc()
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: comment})
}

// ListForPost returns the approved comments of a published post.
func (h *CommentHandler) ListForPost(c echo.Context) error {
	comments, err := h.service.ListForPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: comments})
}

// AdminList is the moderation queue. Supports ?state=pending|approved.
func (h *CommentHandler) AdminList(c echo.Context) error {
	comments, err := h.service.ListAll(c.Request().Context(), c.QueryParam("state"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: comments})
}

func (h *CommentHandler) Approve(c echo.Context) error {
	if err := h.service.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CommentsTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CommentsTotal.WithLabelValues("deleted").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
