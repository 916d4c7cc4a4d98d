package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestPermissionsAllows(t *testing.T) {
	t.Parallel()

	p := Permissions{
		Registries: PermissionFlags{Create: true},
		WorkLogs:   PermissionFlags{Edit: true, Delete: true},
	}

	tests := []struct {
		resource string
		action   string
		want     bool
	}{
		{ResourceRegistries, ActionCreate, true},
		{ResourceRegistries, ActionEdit, false},
		{ResourceRegistries, ActionDelete, false},
		{ResourceWorkLogs, ActionCreate, false},
		{ResourceWorkLogs, ActionEdit, true},
		{ResourceWorkLogs, ActionDelete, true},
		{"unknown", ActionCreate, false},
		{ResourceRegistries, "unknown", false},
	}

	for _, tt := range tests {
		if got := p.Allows(tt.resource, tt.action); got != tt.want {
			t.Errorf("Allows(%q, %q) = %v, want %v", tt.resource, tt.action, got, tt.want)
		}
	}
}

func TestPermissionsZeroValueDeniesAll(t *testing.T) {
	t.Parallel()

	var p Permissions
	for _, resource := range []string{ResourceRegistries, ResourceWorkLogs} {
		for _, action := range []string{ActionCreate, ActionEdit, ActionDelete} {
			if p.Allows(resource, action) {
				t.Errorf("zero value allows %s.%s", resource, action)
			}
		}
	}
}

func TestPermissionsJSONRoundTrip(t *testing.T) {
	t.Parallel()

	in := Permissions{Registries: PermissionFlags{Create: true, Delete: true}}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out Permissions
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestCreateWorkLogRequestDefaultsStatus(t *testing.T) {
	t.Parallel()

	req := CreateWorkLogRequest{Date: "2026-03-15"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if req.Status != StatusPending {
		t.Errorf("Status = %q, want %q", req.Status, StatusPending)
	}
}

func TestCreateWorkLogRequestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateWorkLogRequest
		wantErr error
	}{
		{"missing date", CreateWorkLogRequest{}, ErrMissingDate},
		{"bad date", CreateWorkLogRequest{Date: "15/03/2026"}, ErrInvalidDate},
		{"bad status", CreateWorkLogRequest{Date: "2026-03-15", Status: "approved"}, ErrInvalidStatus},
		{"explicit paid", CreateWorkLogRequest{Date: "2026-03-15", Status: StatusPaid}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateWorkLogRequestValidation(t *testing.T) {
	t.Parallel()

	paid := StatusPaid
	bad := "done"

	if err := (&UpdateWorkLogRequest{Status: &paid}).Validate(); err != nil {
		t.Errorf("status=paid: %v", err)
	}

	if err := (&UpdateWorkLogRequest{Status: &bad}).Validate(); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("status=done: got %v, want ErrInvalidStatus", err)
	}
}

func TestCreateUserRequestValidation(t *testing.T) {
	t.Parallel()

	req := CreateUserRequest{Username: "maria", Password: "12345"}
	if err := req.Validate(); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("short password: got %v, want ErrPasswordTooShort", err)
	}

	req = CreateUserRequest{Username: "maria", Password: "123456"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if req.Role != RoleUser {
		t.Errorf("Role = %q, want default %q", req.Role, RoleUser)
	}

	req = CreateUserRequest{Username: "maria", Password: "123456", Role: "superuser"}
	if err := req.Validate(); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("bad role: got %v, want ErrInvalidRole", err)
	}
}

func TestUserJSONExcludesPasswordHash(t *testing.T) {
	t.Parallel()

	u := User{ID: 1, Username: "admin", PasswordHash: "$2a$10$secret", Role: RoleAdmin}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for k := range raw {
		if k == "password" || k == "password_hash" {
			t.Errorf("serialized user exposes %q", k)
		}
	}
}
