package models

import "time"

// Client is a billed party. Posts is the ordered list of named work sites
// belonging to the client; names are free text with no uniqueness constraint.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Posts     []string  `json:"posts"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateClientRequest is the payload for creating a client.
type CreateClientRequest struct {
	Name    string   `json:"name"`
	CNPJ    string   `json:"cnpj,omitempty"`
	Address string   `json:"address,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Posts   []string `json:"posts,omitempty"`
}

// Validate checks required fields and limits.
func (r *CreateClientRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return nil
}

// UpdateClientRequest is the payload for partially updating a client.
// A nil Posts keeps the stored list; an empty non-nil list clears it.
type UpdateClientRequest struct {
	Name    *string   `json:"name,omitempty"`
	CNPJ    *string   `json:"cnpj,omitempty"`
	Address *string   `json:"address,omitempty"`
	Phone   *string   `json:"phone,omitempty"`
	Email   *string   `json:"email,omitempty"`
	Posts   *[]string `json:"posts,omitempty"`
}

// Validate checks UpdateClientRequest fields.
func (r *UpdateClientRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrMissingName
	}

	if r.Name != nil && len(*r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return nil
}
