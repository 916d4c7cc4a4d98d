package client

import (
	"context"
	"strconv"
)

// CoverageReasonService handles coverage reason CRUD operations.
type CoverageReasonService struct {
	c *Client
}

// coverageReasonListResponse wraps the coverage reason list envelope.
type coverageReasonListResponse struct {
	CoverageReasons []CoverageReason `json:"coverage_reasons"`
}

// List returns all coverage reasons ordered by name.
func (s *CoverageReasonService) List(ctx context.Context) ([]CoverageReason, error) {
	var resp coverageReasonListResponse
	if err := s.c.get(ctx, "/api/coverage-reasons", nil, &resp); err != nil {
		return nil, err
	}
	return resp.CoverageReasons, nil
}

// Get returns a single coverage reason by ID.
func (s *CoverageReasonService) Get(ctx context.Context, id int64) (*CoverageReason, error) {
	var reason CoverageReason
	if err := s.c.get(ctx, "/api/coverage-reasons/"+strconv.FormatInt(id, 10), nil, &reason); err != nil {
		return nil, err
	}
	return &reason, nil
}

// Create creates a new coverage reason. Names are unique; a duplicate
// yields a conflict error (check with IsConflict).
func (s *CoverageReasonService) Create(ctx context.Context, req *CreateCoverageReasonRequest) (*CoverageReason, error) {
	var reason CoverageReason
	if err := s.c.post(ctx, "/api/coverage-reasons", req, &reason); err != nil {
		return nil, err
	}
	return &reason, nil
}

// Update renames a coverage reason.
func (s *CoverageReasonService) Update(ctx context.Context, id int64, req *UpdateCoverageReasonRequest) (*CoverageReason, error) {
	var reason CoverageReason
	if err := s.c.put(ctx, "/api/coverage-reasons/"+strconv.FormatInt(id, 10), req, &reason); err != nil {
		return nil, err
	}
	return &reason, nil
}

// Delete removes a coverage reason by ID.
func (s *CoverageReasonService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/coverage-reasons/"+strconv.FormatInt(id, 10))
}
