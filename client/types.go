package client

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

// UpdateCompanyRequest is the payload for partially updating a company.
type UpdateCompanyRequest struct {
	Name    *string `json:"name,omitempty"`
	CNPJ    *string `json:"cnpj,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// ClientRecord is a billed party. The name avoids clashing with the SDK's
// own Client type; the API calls this entity a client.
type ClientRecord struct {
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

// Employee is a worker referenced by work logs.
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

// UpdateEmployeeRequest is the payload for partially updating an employee.
type UpdateEmployeeRequest struct {
	Name  *string `json:"name,omitempty"`
	CPF   *string `json:"cpf,omitempty"`
	Role  *string `json:"role,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	RE    *string `json:"re,omitempty"`
}

// Service is a billable service type from the catalog.
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

// UpdateServiceRequest is the payload for partially updating a catalog service.
type UpdateServiceRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	DefaultValue *float64 `json:"default_value,omitempty"`
}

// CoverageReason is an enumerable reason a work log represents a
// substitution shift.
type CoverageReason struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCoverageReasonRequest is the payload for creating a coverage reason.
type CreateCoverageReasonRequest struct {
	Name string `json:"name"`
}

// UpdateCoverageReasonRequest is the payload for renaming a coverage reason.
type UpdateCoverageReasonRequest struct {
	Name *string `json:"name,omitempty"`
}

// Work log payment statuses.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// WorkLog is one billable service instance on a date.
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

// WorkLogEntry is a work log with the display names of its references
// resolved server-side. A name is null when the reference is unset or the
// referenced row was deleted.
type WorkLogEntry struct {
	WorkLog

	CompanyName        *string `json:"company_name"`
	ClientName         *string `json:"client_name"`
	EmployeeName       *string `json:"employee_name"`
	ServiceName        *string `json:"service_name"`
	OriginClientName   *string `json:"origin_client_name,omitempty"`
	CoverageReasonName *string `json:"coverage_reason_name,omitempty"`
}

// CreateWorkLogRequest is the payload for creating a work log.
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

// UpdateWorkLogRequest is the payload for partially updating a work log.
// Setting only Status flips the payment state.
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

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// PermissionFlags gates the three mutation kinds on a resource.
type PermissionFlags struct {
	Create bool `json:"create,omitempty"`
	Edit   bool `json:"edit,omitempty"`
	Delete bool `json:"delete,omitempty"`
}

// Permissions is the per-user permission set. Unset flags deny.
type Permissions struct {
	Registries PermissionFlags `json:"registries,omitempty"`
	WorkLogs   PermissionFlags `json:"workLogs,omitempty"`
}

// User is an authenticated identity. The password hash never appears on
// the wire.
type User struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"`
	Role        string      `json:"role"`
	Permissions Permissions `json:"permissions"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Username    string      `json:"username"`
	Password    string      `json:"password"`
	Role        string      `json:"role"`
	Permissions Permissions `json:"permissions"`
}

// UpdateUserRequest is the payload for partially updating a user.
type UpdateUserRequest struct {
	Username    *string      `json:"username,omitempty"`
	Password    *string      `json:"password,omitempty"`
	Role        *string      `json:"role,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

// LoginResponse is returned by the login endpoint.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AuditEntry is one immutable audit trail record.
type AuditEntry struct {
	ID        int64          `json:"id"`
	UserID    *int64         `json:"user_id"`
	Username  *string        `json:"username"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  int64          `json:"entity_id"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// AuditListOptions filters audit trail listings.
type AuditListOptions struct {
	Entity string
	Action string
	Limit  int
	Offset int
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
