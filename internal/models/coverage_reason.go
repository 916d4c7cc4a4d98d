package models

import "time"

// CoverageReason is an enumerable reason a work log represents a
// substitution shift. Names are unique.
type CoverageReason struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCoverageReasonRequest is the payload for creating a coverage reason.
type CreateCoverageReasonRequest struct {
	Name string `json:"name"`
}

// Validate checks required fields and limits.
func (r *CreateCoverageReasonRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return nil
}

// UpdateCoverageReasonRequest is the payload for renaming a coverage reason.
type UpdateCoverageReasonRequest struct {
	Name *string `json:"name,omitempty"`
}

// Validate checks UpdateCoverageReasonRequest fields.
func (r *UpdateCoverageReasonRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrMissingName
	}

	if r.Name != nil && len(*r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return nil
}
