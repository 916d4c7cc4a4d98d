package api_test

import (
	"context"

	"github.com/fieldledger/fieldledger/internal/models"
)

type mockCompanyRepo struct {
	listFn   func(ctx context.Context) ([]models.Company, error)
	getFn    func(ctx context.Context, id int64) (*models.Company, error)
	createFn func(ctx context.Context, actorID int64, req models.CreateCompanyRequest) (*models.Company, error)
	updateFn func(ctx context.Context, actorID, id int64, req models.UpdateCompanyRequest) (*models.Company, error)
	deleteFn func(ctx context.Context, actorID, id int64) error
}

func (m *mockCompanyRepo) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return m.listFn(ctx)
}

func (m *mockCompanyRepo) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	return m.getFn(ctx, id)
}

func (m *mockCompanyRepo) CreateCompany(ctx context.Context, actorID int64, req models.CreateCompanyRequest) (*models.Company, error) {
	return m.createFn(ctx, actorID, req)
}

func (m *mockCompanyRepo) UpdateCompany(ctx context.Context, actorID, id int64, req models.UpdateCompanyRequest) (*models.Company, error) {
	return m.updateFn(ctx, actorID, id, req)
}

func (m *mockCompanyRepo) DeleteCompany(ctx context.Context, actorID, id int64) error {
	return m.deleteFn(ctx, actorID, id)
}

type mockCoverageReasonRepo struct {
	listFn   func(ctx context.Context) ([]models.CoverageReason, error)
	getFn    func(ctx context.Context, id int64) (*models.CoverageReason, error)
	createFn func(ctx context.Context, actorID int64, req models.CreateCoverageReasonRequest) (*models.CoverageReason, error)
	updateFn func(ctx context.Context, actorID, id int64, req models.UpdateCoverageReasonRequest) (*models.CoverageReason, error)
	deleteFn func(ctx context.Context, actorID, id int64) error
}

func (m *mockCoverageReasonRepo) ListCoverageReasons(ctx context.Context) ([]models.CoverageReason, error) {
	return m.listFn(ctx)
}

func (m *mockCoverageReasonRepo) GetCoverageReason(ctx context.Context, id int64) (*models.CoverageReason, error) {
	return m.getFn(ctx, id)
}

func (m *mockCoverageReasonRepo) CreateCoverageReason(ctx context.Context, actorID int64, req models.CreateCoverageReasonRequest) (*models.CoverageReason, error) {
	return m.createFn(ctx, actorID, req)
}

func (m *mockCoverageReasonRepo) UpdateCoverageReason(ctx context.Context, actorID, id int64, req models.UpdateCoverageReasonRequest) (*models.CoverageReason, error) {
	return m.updateFn(ctx, actorID, id, req)
}

func (m *mockCoverageReasonRepo) DeleteCoverageReason(ctx context.Context, actorID, id int64) error {
	return m.deleteFn(ctx, actorID, id)
}

type mockWorkLogRepo struct {
	listFn   func(ctx context.Context, limit, offset int) ([]models.WorkLogEntry, bool, error)
	getFn    func(ctx context.Context, id int64) (*models.WorkLogEntry, error)
	createFn func(ctx context.Context, actorID int64, req models.CreateWorkLogRequest) (*models.WorkLog, error)
	updateFn func(ctx context.Context, actorID, id int64, req models.UpdateWorkLogRequest) (*models.WorkLog, error)
	deleteFn func(ctx context.Context, actorID, id int64) error
}

func (m *mockWorkLogRepo) ListWorkLogs(ctx context.Context, limit, offset int) ([]models.WorkLogEntry, bool, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *mockWorkLogRepo) GetWorkLog(ctx context.Context, id int64) (*models.WorkLogEntry, error) {
	return m.getFn(ctx, id)
}

func (m *mockWorkLogRepo) CreateWorkLog(ctx context.Context, actorID int64, req models.CreateWorkLogRequest) (*models.WorkLog, error) {
	return m.createFn(ctx, actorID, req)
}

func (m *mockWorkLogRepo) UpdateWorkLog(ctx context.Context, actorID, id int64, req models.UpdateWorkLogRequest) (*models.WorkLog, error) {
	return m.updateFn(ctx, actorID, id, req)
}

func (m *mockWorkLogRepo) DeleteWorkLog(ctx context.Context, actorID, id int64) error {
	return m.deleteFn(ctx, actorID, id)
}

type mockUserRepo struct {
	listFn           func(ctx context.Context) ([]models.User, error)
	getFn            func(ctx context.Context, id int64) (*models.User, error)
	createFn         func(ctx context.Context, actorID int64, req models.CreateUserRequest) (*models.User, error)
	updateFn         func(ctx context.Context, actorID, id int64, req models.UpdateUserRequest) (*models.User, error)
	changePasswordFn func(ctx context.Context, actorID int64, password string) error
	deleteFn         func(ctx context.Context, actorID, id int64) error
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserRepo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, actorID int64, req models.CreateUserRequest) (*models.User, error) {
	return m.createFn(ctx, actorID, req)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, actorID, id int64, req models.UpdateUserRequest) (*models.User, error) {
	return m.updateFn(ctx, actorID, id, req)
}

func (m *mockUserRepo) ChangePassword(ctx context.Context, actorID int64, password string) error {
	return m.changePasswordFn(ctx, actorID, password)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, actorID, id int64) error {
	return m.deleteFn(ctx, actorID, id)
}

type mockAuthenticator struct {
	loginFn func(ctx context.Context, username, password string) (*models.User, string, error)
}

func (m *mockAuthenticator) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	return m.loginFn(ctx, username, password)
}

type mockAuditRepo struct {
	listFn func(ctx context.Context, opts models.AuditListOpts) ([]models.AuditEntry, bool, error)
}

func (m *mockAuditRepo) ListAudit(ctx context.Context, opts models.AuditListOpts) ([]models.AuditEntry, bool, error) {
	return m.listFn(ctx, opts)
}
