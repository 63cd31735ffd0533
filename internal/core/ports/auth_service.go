package ports

import (
	"context"

	"github.com/carboncell/user-auth/internal/core/domain"
)

// SignInResult carries the authenticated principal together with the signed
// bearer token that proves it.
type SignInResult struct {
	Principal domain.Principal
	Token     string
}

type AuthService interface {
	// SignIn verifies a username/password pair. Any credential mismatch
	// yields domain.ErrInvalidCredentials without distinguishing unknown
	// user from wrong password.
	SignIn(ctx context.Context, username, password string) (*SignInResult, error)

	// SignUp registers a new user and returns the display label derived
	// from the assigned role set ("Admin", "Moderator" or "User").
	SignUp(ctx context.Context, username, email, password string, roleTokens []string) (string, error)
}
