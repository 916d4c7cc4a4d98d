package models

import "time"

// Work log payment statuses.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// dateLayout is the wire format for work log dates.
const dateLayout = "2006-01-02"

// WorkLog is the central transactional entity: one billable service
// instance on a date, tying company, client, employee, and service to a
// monetary value and payment status. All references are nullable so partial
// entries can be captured; deleting a referenced row leaves the reference
// dangling on purpose.
type WorkLog struct {
	ID               int64     `json:"id"`
	Date             string    `json:"date"`
	CompanyID        *int64    `json:"company_id"`
	ClientID         *int64    `json:"client_id"`
	EmployeeID       *int64    `json:"employee_id"`
	ServiceID        *int64    `json:"service_id"`
	Value            float64   `json:"value"`
	Description      string    `json:"description,omitempty"`
	PostName         string    `json:"post_name,omitempty"`
	Status           string    `json:"status"`
	OriginClientID   *int64    `json:"origin_client_id,omitempty"`
	OriginPostName   string    `json:"origin_post_name,omitempty"`
	CoverageReasonID *int64    `json:"coverage_reason_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// WorkLogEntry is the denormalized read model for work log listings: the
// row plus the display names of its references, resolved at query time.
// A name is nil when the reference is unset or the referenced row was
// deleted.
type WorkLogEntry struct {
	WorkLog

	CompanyName        *string `json:"company_name"`
	ClientName         *string `json:"client_name"`
	EmployeeName       *string `json:"employee_name"`
	ServiceName        *string `json:"service_name"`
	OriginClientName   *string `json:"origin_client_name,omitempty"`
	CoverageReasonName *string `json:"coverage_reason_name,omitempty"`
}

// validDate reports whether s parses as YYYY-MM-DD.
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// validStatus reports whether s is a known payment status.
func validStatus(s string) bool {
	return s == StatusPending || s == StatusPaid
}

// CreateWorkLogRequest is the payload for creating a work log.
// Status defaults to "pending" when omitted.
type CreateWorkLogRequest struct {
	Date             string  `json:"date"`
	CompanyID        *int64  `json:"company_id,omitempty"`
	ClientID         *int64  `json:"client_id,omitempty"`
	EmployeeID       *int64  `json:"employee_id,omitempty"`
	ServiceID        *int64  `json:"service_id,omitempty"`
	Value            float64 `json:"value,omitempty"`
	Description      string  `json:"description,omitempty"`
	PostName         string  `json:"post_name,omitempty"`
	Status           string  `json:"status,omitempty"`
	OriginClientID   *int64  `json:"origin_client_id,omitempty"`
	OriginPostName   string  `json:"origin_post_name,omitempty"`
	CoverageReasonID *int64  `json:"coverage_reason_id,omitempty"`
}

// Validate checks required fields and defaults the status.
func (r *CreateWorkLogRequest) Validate() error {
	if r.Date == "" {
		return ErrMissingDate
	}

	if !validDate(r.Date) {
		return ErrInvalidDate
	}

	if r.Status == "" {
		r.Status = StatusPending
	}

	if !validStatus(r.Status) {
		return ErrInvalidStatus
	}

	return nil
}

// UpdateWorkLogRequest is the payload for partially updating a work log.
// Omitted fields keep their stored values; setting only Status performs the
// payment approval (pending → paid) or an explicit reversion.
type UpdateWorkLogRequest struct {
	Date             *string  `json:"date,omitempty"`
	CompanyID        *int64   `json:"company_id,omitempty"`
	ClientID         *int64   `json:"client_id,omitempty"`
	EmployeeID       *int64   `json:"employee_id,omitempty"`
	ServiceID        *int64   `json:"service_id,omitempty"`
	Value            *float64 `json:"value,omitempty"`
	Description      *string  `json:"description,omitempty"`
	PostName         *string  `json:"post_name,omitempty"`
	Status           *string  `json:"status,omitempty"`
	OriginClientID   *int64   `json:"origin_client_id,omitempty"`
	OriginPostName   *string  `json:"origin_post_name,omitempty"`
	CoverageReasonID *int64   `json:"coverage_reason_id,omitempty"`
}

// Validate checks UpdateWorkLogRequest fields.
func (r *UpdateWorkLogRequest) Validate() error {
	if r.Date != nil && !validDate(*r.Date) {
		return ErrInvalidDate
	}

	if r.Status != nil && !validStatus(*r.Status) {
		return ErrInvalidStatus
	}

	return nil
}
