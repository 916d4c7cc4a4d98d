package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingName     = errors.New("name is required")
	ErrMissingUsername = errors.New("username is required")
	ErrMissingDate     = errors.New("date is required")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidStatus   = errors.New(`status must be "pending" or "paid"`)
	ErrInvalidRole     = errors.New(`role must be "admin" or "user"`)
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

// Sentinel errors for entity lookups.
var (
	ErrCompanyNotFound        = errors.New("company not found")
	ErrClientNotFound         = errors.New("client not found")
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrServiceNotFound        = errors.New("service not found")
	ErrCoverageReasonNotFound = errors.New("coverage reason not found")
	ErrWorkLogNotFound        = errors.New("work log not found")
	ErrUserNotFound           = errors.New("user not found")
)

// ErrDuplicateKey indicates a unique constraint violation (maps to HTTP 409 Conflict).
var ErrDuplicateKey = errors.New("duplicate key")

// ErrInvalidCredentials indicates a failed login. It is deliberately the same
// for unknown usernames and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
