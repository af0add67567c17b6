package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// RegisterInput carries the fields for creating a new account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthService interface {
	// Login verifies credentials and returns a signed token with the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Register creates a new account. Caller is responsible for the
	// admin-role check; duplicate emails yield domain.ErrUserExists.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// CurrentUser re-fetches the account behind a verified credential.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	// ChangePassword swaps the stored hash after verifying the current one.
	ChangePassword(ctx context.Context, userID, current, next string) error
	// EnsureAdmin creates the bootstrap admin account when no users exist.
	EnsureAdmin(ctx context.Context, email, password, name string) error
}
