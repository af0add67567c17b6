package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const submissionTTL = 10 * time.Minute

// SubmissionGuard provides short-lived dedup checks for contact-form
// submissions, backed by Redis.
// Key format: contact:<email>:<subject>
type SubmissionGuard struct {
	client *redis.Client
}

// NewSubmissionGuard creates a SubmissionGuard wrapping the given Redis client.
func NewSubmissionGuard(client *redis.Client) *SubmissionGuard {
	return &SubmissionGuard{client: client}
}

// Seen reports whether the same email/subject pair was submitted inside the
// dedup window.
func (g *SubmissionGuard) Seen(ctx context.Context, email, subject string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(email, subject)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records a submission (expires after submissionTTL).
func (g *SubmissionGuard) Mark(ctx context.Context, email, subject string) error {
	return g.client.Set(ctx, g.key(email, subject), "1", submissionTTL).Err()
}

func (g *SubmissionGuard) key(email, subject string) string {
	return fmt.Sprintf("contact:%s:%s", strings.ToLower(email), strings.ToLower(subject))
}
