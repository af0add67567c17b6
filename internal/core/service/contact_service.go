package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// SubmissionGuard abstracts the short-lived dedup store (Redis) that keeps
// repeated contact-form submissions out of the inbox.
type SubmissionGuard interface {
	Seen(ctx context.Context, email, subject string) (bool, error)
	Mark(ctx context.Context, email, subject string) error
}

type ContactService struct {
	repo  ports.ContactRepository
	guard SubmissionGuard
	log   zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, guard SubmissionGuard, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, guard: guard, log: log}
}

func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) (*domain.ContactMessage, error) {
	seen, err := s.guard.Seen(ctx, in.Email, in.Subject)
	if err != nil {
		// Dedup store down: accept the message rather than drop it.
		s.log.Warn().Err(err).Msg("submission guard unavailable")
	} else if seen {
		return nil, domain.ErrDuplicateSubmission
	}

	msg := &domain.ContactMessage{
		Reference: uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Body:      in.Body,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Mark(ctx, in.Email, in.Subject); err != nil {
		s.log.Warn().Err(err).Msg("failed to mark submission")
	}

	s.log.Info().Str("reference", created.Reference).Msg("contact message received")
	return created, nil
}

func (s *ContactService) Inbox(ctx context.Context, unreadOnly bool) ([]*domain.ContactMessage, error) {
	return s.repo.List(ctx, unreadOnly)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}
