// Package models defines data types for the fieldledger back office.
package models

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// User is an authenticated identity. The password hash never leaves the
// server: it is excluded from JSON and from list projections.
type User struct {
	ID           int64       `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Role         string      `json:"role"`
	Permissions  Permissions `json:"permissions"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks LoginRequest fields.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return ErrMissingUsername
	}

	return nil
}

// CreateUserRequest is the payload for creating a user. Password is hashed
// by the service layer before storage and never echoed back.
type CreateUserRequest struct {
	Username    string      `json:"username"`
	Password    string      `json:"password"`
	Role        string      `json:"role"`
	Permissions Permissions `json:"permissions"`
}

// Validate checks required fields and limits. An empty role defaults to "user".
func (r *CreateUserRequest) Validate() error {
	if r.Username == "" {
		return ErrMissingUsername
	}

	if len(r.Username) > 50 {
		return ErrFieldTooLong("username", 50)
	}

	if len(r.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	if r.Role == "" {
		r.Role = RoleUser
	}

	if r.Role != RoleAdmin && r.Role != RoleUser {
		return ErrInvalidRole
	}

	return nil
}

// UpdateUserRequest is the payload for updating a user. Omitted fields keep
// their stored values; an omitted password leaves the stored hash untouched.
type UpdateUserRequest struct {
	Username    *string      `json:"username,omitempty"`
	Password    *string      `json:"password,omitempty"`
	Role        *string      `json:"role,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

// Validate checks UpdateUserRequest fields.
func (r *UpdateUserRequest) Validate() error {
	if r.Username != nil && *r.Username == "" {
		return ErrMissingUsername
	}

	if r.Username != nil && len(*r.Username) > 50 {
		return ErrFieldTooLong("username", 50)
	}

	if r.Password != nil && len(*r.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	if r.Role != nil && *r.Role != RoleAdmin && *r.Role != RoleUser {
		return ErrInvalidRole
	}

	return nil
}

// UserUpdate holds the resolved column changes for a user update, after the
// service layer has hashed any supplied secret. A nil PasswordHash leaves
// the stored hash untouched.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Role         *string
	Permissions  *Permissions
}

// ChangePasswordRequest is the payload for the self-service password change.
type ChangePasswordRequest struct {
	Password string `json:"password"`
}

// Validate checks the new password length.
func (r *ChangePasswordRequest) Validate() error {
	if len(r.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}
