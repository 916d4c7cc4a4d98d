package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// EmployeeStore is the data-access interface EmployeeService depends on.
type EmployeeStore interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, req models.UpdateEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

// EmployeeService wraps EmployeeStore with the audit trail on mutations.
type EmployeeService struct {
	store       EmployeeStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
}

// NewEmployeeService creates an EmployeeService.
func NewEmployeeService(store EmployeeStore, auditWorker AuditEnqueuer, log *logrus.Logger) *EmployeeService {
	return &EmployeeService{store: store, auditWorker: auditWorker, log: log}
}

// ListEmployees returns all employees (pass-through).
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return s.store.ListEmployees(ctx)
}

// GetEmployee returns a single employee by ID (pass-through).
func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	return s.store.GetEmployee(ctx, id)
}

// CreateEmployee creates an employee and records the submitted payload.
func (s *EmployeeService) CreateEmployee(ctx context.Context, actorID int64, req models.CreateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.store.CreateEmployee(ctx, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditCreate, models.EntityEmployees, employee.ID, payloadMap(req))

	return employee, nil
}

// UpdateEmployee partially updates an employee.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, actorID, id int64, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.store.UpdateEmployee(ctx, id, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditUpdate, models.EntityEmployees, id, payloadMap(req))

	return employee, nil
}

// DeleteEmployee removes an employee.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, actorID, id int64) error {
	err := s.store.DeleteEmployee(ctx, id)
	if err == nil {
		auditAsync(s.auditWorker, actorID, models.AuditDelete, models.EntityEmployees, id, nil)
	}
	return err
}
