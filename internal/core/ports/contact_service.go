package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// ContactInput carries a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

type ContactService interface {
	// Submit stores a message and returns it with its reference set.
	// Repeated submissions of the same email/subject pair inside the dedup
	// window yield domain.ErrDuplicateSubmission.
	Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error)
	Inbox(ctx context.Context, unreadOnly bool) ([]*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
}

// ContactRepository defines the persistence interface for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context, unreadOnly bool) ([]*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int64, error)
}
