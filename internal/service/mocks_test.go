package service

import (
	"context"
	"sync"

	"github.com/fieldledger/fieldledger/internal/models"
)

// auditCall captures a recorded audit entry for assertions.
type auditCall struct {
	UserID   int64
	Action   string
	Entity   string
	EntityID int64
	Details  map[string]any
}

// mockAuditor records RecordAudit calls.
type mockAuditor struct {
	mu    sync.Mutex
	calls []auditCall
	err   error
}

func (m *mockAuditor) RecordAudit(_ context.Context, userID int64, action, entity string, entityID int64, details map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, auditCall{UserID: userID, Action: action, Entity: entity, EntityID: entityID, Details: details})
	return m.err
}

func (m *mockAuditor) getCalls() []auditCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]auditCall(nil), m.calls...)
}

// capturingEnqueuer collects enqueued audit jobs synchronously.
type capturingEnqueuer struct {
	mu   sync.Mutex
	jobs []*AuditJob
}

func (c *capturingEnqueuer) Enqueue(job *AuditJob) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = append(c.jobs, job)
}

func (c *capturingEnqueuer) getJobs() []*AuditJob {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*AuditJob(nil), c.jobs...)
}

// mockCompanyStore records calls and returns configured responses.
type mockCompanyStore struct {
	listCompanies func(ctx context.Context) ([]models.Company, error)
	getCompany    func(ctx context.Context, id int64) (*models.Company, error)
	createCompany func(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error)
	updateCompany func(ctx context.Context, id int64, req models.UpdateCompanyRequest) (*models.Company, error)
	deleteCompany func(ctx context.Context, id int64) error
}

func (m *mockCompanyStore) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return m.listCompanies(ctx)
}

func (m *mockCompanyStore) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	return m.getCompany(ctx, id)
}

func (m *mockCompanyStore) CreateCompany(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error) {
	return m.createCompany(ctx, req)
}

func (m *mockCompanyStore) UpdateCompany(ctx context.Context, id int64, req models.UpdateCompanyRequest) (*models.Company, error) {
	return m.updateCompany(ctx, id, req)
}

func (m *mockCompanyStore) DeleteCompany(ctx context.Context, id int64) error {
	return m.deleteCompany(ctx, id)
}

// mockUserStore records calls and returns configured responses.
type mockUserStore struct {
	listUsers         func(ctx context.Context) ([]models.User, error)
	getUser           func(ctx context.Context, id int64) (*models.User, error)
	getUserByUsername func(ctx context.Context, username string) (*models.User, error)
	createUser        func(ctx context.Context, username, passwordHash, role string, perms models.Permissions) (*models.User, error)
	updateUser        func(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
	updatePassword    func(ctx context.Context, id int64, passwordHash string) error
	deleteUser        func(ctx context.Context, id int64) error
}

func (m *mockUserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsers(ctx)
}

func (m *mockUserStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return m.getUser(ctx, id)
}

func (m *mockUserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.getUserByUsername(ctx, username)
}

func (m *mockUserStore) CreateUser(ctx context.Context, username, passwordHash, role string, perms models.Permissions) (*models.User, error) {
	return m.createUser(ctx, username, passwordHash, role, perms)
}

func (m *mockUserStore) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	return m.updateUser(ctx, id, upd)
}

func (m *mockUserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.updatePassword(ctx, id, passwordHash)
}

func (m *mockUserStore) DeleteUser(ctx context.Context, id int64) error {
	return m.deleteUser(ctx, id)
}

// mockWorkLogStore records calls and returns configured responses.
type mockWorkLogStore struct {
	listWorkLogs  func(ctx context.Context, limit, offset int) ([]models.WorkLogEntry, bool, error)
	getWorkLog    func(ctx context.Context, id int64) (*models.WorkLogEntry, error)
	createWorkLog func(ctx context.Context, req models.CreateWorkLogRequest) (*models.WorkLog, error)
	updateWorkLog func(ctx context.Context, id int64, req models.UpdateWorkLogRequest) (*models.WorkLog, error)
	deleteWorkLog func(ctx context.Context, id int64) error
}

func (m *mockWorkLogStore) ListWorkLogs(ctx context.Context, limit, offset int) ([]models.WorkLogEntry, bool, error) {
	return m.listWorkLogs(ctx, limit, offset)
}

func (m *mockWorkLogStore) GetWorkLog(ctx context.Context, id int64) (*models.WorkLogEntry, error) {
	return m.getWorkLog(ctx, id)
}

func (m *mockWorkLogStore) CreateWorkLog(ctx context.Context, req models.CreateWorkLogRequest) (*models.WorkLog, error) {
	return m.createWorkLog(ctx, req)
}

func (m *mockWorkLogStore) UpdateWorkLog(ctx context.Context, id int64, req models.UpdateWorkLogRequest) (*models.WorkLog, error) {
	return m.updateWorkLog(ctx, id, req)
}

func (m *mockWorkLogStore) DeleteWorkLog(ctx context.Context, id int64) error {
	return m.deleteWorkLog(ctx, id)
}
