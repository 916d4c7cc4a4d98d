package models

import "time"

// Audit action kinds. One entry is written per mutating operation.
const (
	AuditCreate         = "CREATE"
	AuditUpdate         = "UPDATE"
	AuditDelete         = "DELETE"
	AuditUpdatePassword = "UPDATE_PASSWORD"
)

// Entity kinds recorded in the audit trail.
const (
	EntityCompanies       = "companies"
	EntityClients         = "clients"
	EntityEmployees       = "employees"
	EntityServices        = "services"
	EntityCoverageReasons = "coverage_reasons"
	EntityWorkLogs        = "work_logs"
	EntityUsers           = "users"
)

// AuditEntry is a single immutable audit record. Username is resolved from
// the acting user at read time and is nil when that user was since deleted.
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

// AuditListOpts holds filters for listing the audit trail.
type AuditListOpts struct {
	Entity string
	Action string
	Limit  int
	Offset int
}
