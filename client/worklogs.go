package client

import (
	"context"
	"net/url"
	"strconv"
)

// WorkLogService handles work log operations.
type WorkLogService struct {
	c *Client
}

// workLogListResponse wraps the paginated work log list response.
type workLogListResponse struct {
	WorkLogs []WorkLogEntry `json:"work_logs"`
	HasMore  bool           `json:"has_more"`
}

// List returns work logs newest first with limit/offset pagination.
func (s *WorkLogService) List(ctx context.Context, limit, offset int) ([]WorkLogEntry, bool, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	var resp workLogListResponse
	if err := s.c.get(ctx, "/api/work-logs", params, &resp); err != nil {
		return nil, false, err
	}
	return resp.WorkLogs, resp.HasMore, nil
}

// Get returns a single work log with resolved reference names.
func (s *WorkLogService) Get(ctx context.Context, id int64) (*WorkLogEntry, error) {
	var entry WorkLogEntry
	if err := s.c.get(ctx, "/api/work-logs/"+strconv.FormatInt(id, 10), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create creates a new work log. Status defaults to pending when omitted.
func (s *WorkLogService) Create(ctx context.Context, req *CreateWorkLogRequest) (*WorkLog, error) {
	var wl WorkLog
	if err := s.c.post(ctx, "/api/work-logs", req, &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// Update partially updates a work log; omitted fields keep their values.
func (s *WorkLogService) Update(ctx context.Context, id int64, req *UpdateWorkLogRequest) (*WorkLog, error) {
	var wl WorkLog
	if err := s.c.put(ctx, "/api/work-logs/"+strconv.FormatInt(id, 10), req, &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// MarkPaid flips a work log's status to paid.
func (s *WorkLogService) MarkPaid(ctx context.Context, id int64) (*WorkLog, error) {
	status := StatusPaid
	return s.Update(ctx, id, &UpdateWorkLogRequest{Status: &status})
}

// Delete removes a work log by ID.
func (s *WorkLogService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/work-logs/"+strconv.FormatInt(id, 10))
}
