package client

import (
	"context"
	"net/url"
	"strconv"
)

// AuditService reads the audit trail. Requires an admin token.
type AuditService struct {
	c *Client
}

// auditListResponse wraps the paginated audit list response.
type auditListResponse struct {
	AuditLogs []AuditEntry `json:"audit_logs"`
	HasMore   bool         `json:"has_more"`
}

// List returns audit entries newest first with optional filters.
func (s *AuditService) List(ctx context.Context, opts *AuditListOptions) ([]AuditEntry, bool, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Entity != "" {
			params.Set("entity", opts.Entity)
		}
		if opts.Action != "" {
			params.Set("action", opts.Action)
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Offset > 0 {
			params.Set("offset", strconv.Itoa(opts.Offset))
		}
	}
	var resp auditListResponse
	if err := s.c.get(ctx, "/api/audit-logs", params, &resp); err != nil {
		return nil, false, err
	}
	return resp.AuditLogs, resp.HasMore, nil
}
