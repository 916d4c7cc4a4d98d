package api

import (
	"context"

	"github.com/fieldledger/fieldledger/internal/models"
)

// CompanyRepository defines company operations used by CompanyHandler.
type CompanyRepository interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, id int64) (*models.Company, error)
	CreateCompany(ctx context.Context, actorID int64, req models.CreateCompanyRequest) (*models.Company, error)
	UpdateCompany(ctx context.Context, actorID, id int64, req models.UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, actorID, id int64) error
}

// ClientRepository defines client operations used by ClientHandler.
type ClientRepository interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id int64) (*models.Client, error)
	CreateClient(ctx context.Context, actorID int64, req models.CreateClientRequest) (*models.Client, error)
	UpdateClient(ctx context.Context, actorID, id int64, req models.UpdateClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, actorID, id int64) error
}

// EmployeeRepository defines employee operations used by EmployeeHandler.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, actorID int64, req models.CreateEmployeeRequest) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, actorID, id int64, req models.UpdateEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, actorID, id int64) error
}

// CatalogRepository defines service catalog operations used by CatalogHandler.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id int64) (*models.Service, error)
	CreateService(ctx context.Context, actorID int64, req models.CreateServiceRequest) (*models.Service, error)
	UpdateService(ctx context.Context, actorID, id int64, req models.UpdateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, actorID, id int64) error
}

// CoverageReasonRepository defines coverage reason operations used by CoverageReasonHandler.
type CoverageReasonRepository interface {
	ListCoverageReasons(ctx context.Context) ([]models.CoverageReason, error)
	GetCoverageReason(ctx context.Context, id int64) (*models.CoverageReason, error)
	CreateCoverageReason(ctx context.Context, actorID int64, req models.CreateCoverageReasonRequest) (*models.CoverageReason, error)
	UpdateCoverageReason(ctx context.Context, actorID, id int64, req models.UpdateCoverageReasonRequest) (*models.CoverageReason, error)
	DeleteCoverageReason(ctx context.Context, actorID, id int64) error
}

// WorkLogRepository defines work log operations used by WorkLogHandler.
type WorkLogRepository interface {
	ListWorkLogs(ctx context.Context, limit, offset int) ([]models.WorkLogEntry, bool, error)
	GetWorkLog(ctx context.Context, id int64) (*models.WorkLogEntry, error)
	CreateWorkLog(ctx context.Context, actorID int64, req models.CreateWorkLogRequest) (*models.WorkLog, error)
	UpdateWorkLog(ctx context.Context, actorID, id int64, req models.UpdateWorkLogRequest) (*models.WorkLog, error)
	DeleteWorkLog(ctx context.Context, actorID, id int64) error
}

// UserRepository defines user management operations used by UserHandler.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, actorID int64, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, actorID, id int64, req models.UpdateUserRequest) (*models.User, error)
	ChangePassword(ctx context.Context, actorID int64, password string) error
	DeleteUser(ctx context.Context, actorID, id int64) error
}

// Authenticator verifies credentials and issues session tokens.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*models.User, string, error)
}

// AuditRepository defines audit trail reads used by AuditHandler.
type AuditRepository interface {
	ListAudit(ctx context.Context, opts models.AuditListOpts) ([]models.AuditEntry, bool, error)
}
