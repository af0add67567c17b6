package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// ContactHandler serves the public contact form and the admin inbox.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit stores a contact message and returns its reference. Repeated
// submissions of the same email/subject pair inside the dedup window are
// rejected with 409.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.service.Submit(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			metrics.ContactMessagesTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}
	metrics.ContactMessagesTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusCreated, contactAcceptedResponse{Success: true, Reference: msg.Reference})
}

// Inbox lists stored messages, newest first. Supports ?unread=true.
func (h *ContactHandler) Inbox(c echo.Context) error {
	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread"))
	msgs, err := h.service.Inbox(c.Request().Context(), unreadOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: msgs})
}

func (h *ContactHandler) MarkRead(c echo.Context) error {
	if err := h.service.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
