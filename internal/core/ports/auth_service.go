package ports

import (
	"context"

	"github.com/inkwell/blogging-platform/internal/core/domain"
)

// RegisterInput carries the fields required to create an identity.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements registration, credential verification, and token
// issuance.
type AuthService interface {
	// Register creates a new identity with a hashed password and returns a
	// signed token for it.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login verifies the email/password pair and returns a signed token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser resolves the identity behind an already-validated token.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
