package client

import (
	"context"
	"strconv"
)

// ClientService handles client CRUD operations.
type ClientService struct {
	c *Client
}

// clientListResponse wraps the client list envelope.
type clientListResponse struct {
	Clients []ClientRecord `json:"clients"`
}

// List returns all clients ordered by name.
func (s *ClientService) List(ctx context.Context) ([]ClientRecord, error) {
	var resp clientListResponse
	if err := s.c.get(ctx, "/api/clients", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Clients, nil
}

// Get returns a single client by ID.
func (s *ClientService) Get(ctx context.Context, id int64) (*ClientRecord, error) {
	var rec ClientRecord
	if err := s.c.get(ctx, "/api/clients/"+strconv.FormatInt(id, 10), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create creates a new client.
func (s *ClientService) Create(ctx context.Context, req *CreateClientRequest) (*ClientRecord, error) {
	var rec ClientRecord
	if err := s.c.post(ctx, "/api/clients", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update partially updates a client; omitted fields keep their values.
func (s *ClientService) Update(ctx context.Context, id int64, req *UpdateClientRequest) (*ClientRecord, error) {
	var rec ClientRecord
	if err := s.c.put(ctx, "/api/clients/"+strconv.FormatInt(id, 10), req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes a client by ID. Work logs referencing it keep the dangling
// ID and render a null client name.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/clients/"+strconv.FormatInt(id, 10))
}
