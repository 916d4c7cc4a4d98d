package models

import "time"

// Employee is a worker referenced by work logs. Role is a free-text
// classification (freelancer, salaried, ...); RE is the internal
// registration number.
type Employee struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf,omitempty"`
	Role      string    `json:"role,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	RE        string    `json:"re,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateEmployeeRequest is the payload for creating an employee.
type CreateEmployeeRequest struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf,omitempty"`
	Role  string `json:"role,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	RE    string `json:"re,omitempty"`
}

// Validate checks required fields and limits.
func (r *CreateEmployeeRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return nil
}

// UpdateEmployeeRequest is the payload for partially updating an employee.
type UpdateEmployeeRequest struct {
	Name  *string `json:"name,omitempty"`
	CPF   *string `json:"cpf,omitempty"`
	Role  *string `json:"role,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	RE    *string `json:"re,omitempty"`
}

// Validate checks UpdateEmployeeRequest fields.
func (r *UpdateEmployeeRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrMissingName
	}

	if r.Name != nil && len(*r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return nil
}
