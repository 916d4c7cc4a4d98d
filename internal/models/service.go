package models

import "time"

// Service is a billable service type from the catalog. DefaultValue is a
// convenience prefill for new work logs, not a constraint: a work log may
// record any value.
type Service struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DefaultValue float64   `json:"default_value"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateServiceRequest is the payload for creating a catalog service.
type CreateServiceRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	DefaultValue float64 `json:"default_value,omitempty"`
}

// Validate checks required fields and limits.
func (r *CreateServiceRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return nil
}

// UpdateServiceRequest is the payload for partially updating a catalog service.
type UpdateServiceRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	DefaultValue *float64 `json:"default_value,omitempty"`
}

// Validate checks UpdateServiceRequest fields.
func (r *UpdateServiceRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrMissingName
	}

	if r.Name != nil && len(*r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return nil
}
