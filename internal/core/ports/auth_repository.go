package ports

import (
	"context"

	"github.com/carboncell/user-auth/internal/core/domain"
)

// AuthRepository defines the credential-store contract: user lookups,
// advisory existence checks, and read-only access to role reference data.
type AuthRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindRoleByName(ctx context.Context, name string) (*domain.Role, error)

	// CreateUser persists a new user atomically. Implementations must
	// translate a uniqueness violation into ErrUsernameTaken or
	// ErrEmailInUse so the existence pre-checks are advisory only.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}
