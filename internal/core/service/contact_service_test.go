package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

type stubContactRepo struct {
	byID   map[string]*domain.ContactMessage
	nextID int
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{byID: make(map[string]*domain.ContactMessage)}
}

func (r *stubContactRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	r.nextID++
	clone := *m
	clone.ID = fmt.Sprintf("m%d", r.nextID)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubContactRepo) List(_ context.Context, unreadOnly bool) ([]*domain.ContactMessage, error) {
	var out []*domain.ContactMessage
	for _, m := range r.byID {
		if unreadOnly && m.Read {
			continue
		}
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubContactRepo) MarkRead(_ context.Context, id string) error {
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrMessageNotFound
	}
	m.Read = true
	return nil
}

func (r *stubContactRepo) CountUnread(_ context.Context) (int64, error) {
	var n int64
	for _, m := range r.byID {
		if !m.Read {
			n++
		}
	}
	return n, nil
}

type stubGuard struct {
	seen map[string]bool
	err  error
}

func newStubGuard() *stubGuard {
	return &stubGuard{seen: make(map[string]bool)}
}

func (g *stubGuard) key(email, subject string) string { return email + "|" + subject }

func (g *stubGuard) Seen(_ context.Context, email, subject string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	return g.seen[g.key(email, subject)], nil
}

func (g *stubGuard) Mark(_ context.Context, email, subject string) error {
	if g.err != nil {
		return g.err
	}
	g.seen[g.key(email, subject)] = true
	return nil
}

func contactInput() ports.ContactInput {
	return ports.ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Body:    "I saw your site.",
	}
}

func TestContactService_Submit_Success(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo, newStubGuard(), discardLogger)

	msg, err := svc.Submit(context.Background(), contactInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Reference == "" {
		t.Error("accepted message must carry a reference")
	}
	if msg.Read {
		t.Error("new message must start unread")
	}
}

func TestContactService_Submit_Duplicate(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo, newStubGuard(), discardLogger)

	if _, err := svc.Submit(context.Background(), contactInput()); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	_, err := svc.Submit(context.Background(), contactInput())
	if !errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("duplicate must not be stored, have %d messages", len(repo.byID))
	}
}

func TestContactService_Submit_GuardDown(t *testing.T) {
	repo := newStubContactRepo()
	guard := newStubGuard()
	guard.err = errors.New("redis unavailable")
	svc := NewContactService(repo, guard, discardLogger)

	if _, err := svc.Submit(context.Background(), contactInput()); err != nil {
		t.Fatalf("submission must survive a guard outage, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected message stored despite guard outage")
	}
}

func TestContactService_MarkRead(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo, newStubGuard(), discardLogger)

	msg, err := svc.Submit(context.Background(), contactInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := svc.MarkRead(context.Background(), msg.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	unread, err := svc.Inbox(context.Background(), true)
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(unread) != 0 {
		t.Fatalf("expected empty unread inbox, got %d", len(unread))
	}
}
