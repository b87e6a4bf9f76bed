package services

import (
	"errors"
	"fmt"

	"github.com/shulchan-app/shulchan-backend/internal/roles"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
)

// ForbiddenError carries the role pair that failed the access check so the
// caller can render a meaningful message. It never echoes raw input strings;
// both fields come from the closed role set.
type ForbiddenError struct {
	ActorRole roles.Role
	Required  roles.Role
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("insufficient permissions: %s cannot act on %s", e.ActorRole, e.Required)
}

// IsForbidden reports whether err is a ForbiddenError.
func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}

// ValidationError rejects structurally invalid input before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
