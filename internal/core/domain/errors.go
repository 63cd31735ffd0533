package domain

import (
	"errors"
	"fmt"
)

// Domain rejections: expected conditions that map to user-facing messages.
var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailInUse         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// ErrRoleNotFound signals missing role reference data. This is a deployment
// problem, not a user error: the roles collection must be seeded before the
// service accepts registrations.
var ErrRoleNotFound = errors.New("role reference data not found")

// UpstreamStatusError reports a non-2xx response from the public-apis
// directory upstream. Client-class statuses are passed through to the caller.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("directory upstream returned status %d", e.StatusCode)
}
