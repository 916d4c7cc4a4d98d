package client

import (
	"context"
	"strconv"
)

// EmployeeService handles employee CRUD operations.
type EmployeeService struct {
	c *Client
}

// employeeListResponse wraps the employee list envelope.
type employeeListResponse struct {
	Employees []Employee `json:"employees"`
}

// List returns all employees ordered by name.
func (s *EmployeeService) List(ctx context.Context) ([]Employee, error) {
	var resp employeeListResponse
	if err := s.c.get(ctx, "/api/employees", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}

// Get returns a single employee by ID.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*Employee, error) {
	var employee Employee
	if err := s.c.get(ctx, "/api/employees/"+strconv.FormatInt(id, 10), nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// Create creates a new employee.
func (s *EmployeeService) Create(ctx context.Context, req *CreateEmployeeRequest) (*Employee, error) {
	var employee Employee
	if err := s.c.post(ctx, "/api/employees", req, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// Update partially updates an employee; omitted fields keep their values.
func (s *EmployeeService) Update(ctx context.Context, id int64, req *UpdateEmployeeRequest) (*Employee, error) {
	var employee Employee
	if err := s.c.put(ctx, "/api/employees/"+strconv.FormatInt(id, 10), req, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// Delete removes an employee by ID.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/employees/"+strconv.FormatInt(id, 10))
}
