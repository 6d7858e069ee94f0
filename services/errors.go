package services

import (
	"errors"
	"fmt"

	"monplanting/validator"
)

// Common service-level errors
var (
	// ErrValidation matches every validator.ValidationErrors value.
	ErrValidation = validator.ErrInvalid

	ErrNotFound         = errors.New("not found")
	ErrAccountNotFound  = fmt.Errorf("account %w", ErrNotFound)
	ErrParcelNotFound   = fmt.Errorf("parcel %w", ErrNotFound)
	ErrActivityNotFound = fmt.Errorf("activity %w", ErrNotFound)
	ErrReminderNotFound = fmt.Errorf("reminder %w", ErrNotFound)

	ErrDuplicateIdentity = errors.New("username or email already registered")

	// ErrAuthenticationFailed is the only credential failure shown to clients.
	ErrAuthenticationFailed = errors.New("invalid username or password")

	// Internal credential failures; both match ErrAuthenticationFailed.
	ErrUnknownUsername    error = &credentialError{reason: "unknown username", kind: ErrNotFound}
	ErrInvalidCredentials error = &credentialError{reason: "password mismatch"}
)

type credentialError struct {
	reason string
	kind   error
}

func (e *credentialError) Error() string {
	return "authentication failed: " + e.reason
}

func (e *credentialError) Is(target error) bool {
	return target == ErrAuthenticationFailed || (e.kind != nil && target == e.kind)
}
