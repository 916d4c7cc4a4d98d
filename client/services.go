package client

import (
	"context"
	"strconv"
)

// CatalogService handles the service catalog CRUD operations.
type CatalogService struct {
	c *Client
}

// serviceListResponse wraps the service list envelope.
type serviceListResponse struct {
	Services []Service `json:"services"`
}

// List returns all catalog services ordered by name.
func (s *CatalogService) List(ctx context.Context) ([]Service, error) {
	var resp serviceListResponse
	if err := s.c.get(ctx, "/api/services", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Services, nil
}

// Get returns a single catalog service by ID.
func (s *CatalogService) Get(ctx context.Context, id int64) (*Service, error) {
	var svc Service
	if err := s.c.get(ctx, "/api/services/"+strconv.FormatInt(id, 10), nil, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Create creates a new catalog service.
func (s *CatalogService) Create(ctx context.Context, req *CreateServiceRequest) (*Service, error) {
	var svc Service
	if err := s.c.post(ctx, "/api/services", req, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Update partially updates a catalog service; omitted fields keep their values.
func (s *CatalogService) Update(ctx context.Context, id int64, req *UpdateServiceRequest) (*Service, error) {
	var svc Service
	if err := s.c.put(ctx, "/api/services/"+strconv.FormatInt(id, 10), req, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Delete removes a catalog service by ID.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/services/"+strconv.FormatInt(id, 10))
}
