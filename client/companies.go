package client

import (
	"context"
	"strconv"
)

// CompanyService handles company CRUD operations.
type CompanyService struct {
	c *Client
}

// companyListResponse wraps the company list envelope.
type companyListResponse struct {
	Companies []Company `json:"companies"`
}

// List returns all companies ordered by name.
func (s *CompanyService) List(ctx context.Context) ([]Company, error) {
	var resp companyListResponse
	if err := s.c.get(ctx, "/api/companies", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Companies, nil
}

// Get returns a single company by ID.
func (s *CompanyService) Get(ctx context.Context, id int64) (*Company, error) {
	var company Company
	if err := s.c.get(ctx, "/api/companies/"+strconv.FormatInt(id, 10), nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// Create creates a new company.
func (s *CompanyService) Create(ctx context.Context, req *CreateCompanyRequest) (*Company, error) {
	var company Company
	if err := s.c.post(ctx, "/api/companies", req, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// Update partially updates a company; omitted fields keep their values.
func (s *CompanyService) Update(ctx context.Context, id int64, req *UpdateCompanyRequest) (*Company, error) {
	var company Company
	if err := s.c.put(ctx, "/api/companies/"+strconv.FormatInt(id, 10), req, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// Delete removes a company by ID.
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/companies/"+strconv.FormatInt(id, 10))
}
