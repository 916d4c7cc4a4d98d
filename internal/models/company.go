package models

import "time"

// Company is a provider entity that issues work.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCompanyRequest is the payload for creating a company.
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Validate checks required fields and limits.
func (r *CreateCompanyRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return nil
}

// UpdateCompanyRequest is the payload for partially updating a company.
// Omitted fields keep their stored values.
type UpdateCompanyRequest struct {
	Name    *string `json:"name,omitempty"`
	CNPJ    *string `json:"cnpj,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// Validate checks UpdateCompanyRequest fields.
func (r *UpdateCompanyRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrMissingName
	}

	if r.Name != nil && len(*r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return nil
}
