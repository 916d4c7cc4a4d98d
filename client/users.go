package client

import (
	"context"
	"strconv"
)

// UserService handles user management operations. All calls except
// ChangePassword require an admin token.
type UserService struct {
	c *Client
}

// userListResponse wraps the user list envelope.
type userListResponse struct {
	Users []User `json:"users"`
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]User, error) {
	var resp userListResponse
	if err := s.c.get(ctx, "/api/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// Get returns a single user by ID.
func (s *UserService) Get(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := s.c.get(ctx, "/api/users/"+strconv.FormatInt(id, 10), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user.
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	var user User
	if err := s.c.post(ctx, "/api/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update partially updates a user; omitted fields keep their values.
func (s *UserService) Update(ctx context.Context, id int64, req *UpdateUserRequest) (*User, error) {
	var user User
	if err := s.c.put(ctx, "/api/users/"+strconv.FormatInt(id, 10), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword changes the password of the authenticated user.
func (s *UserService) ChangePassword(ctx context.Context, password string) error {
	body := map[string]string{"password": password}
	return s.c.put(ctx, "/api/users/password", body, nil)
}

// Delete removes a user by ID. Audit entries written by the user survive
// with a null username.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/users/"+strconv.FormatInt(id, 10))
}
