package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/fieldledger/fieldledger/internal/api"
	"github.com/fieldledger/fieldledger/internal/models"
)

func TestUserCreate_Valid(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{
		createFn: func(_ context.Context, _ int64, req models.CreateUserRequest) (*models.User, error) {
			return &models.User{ID: 5, Username: req.Username, Role: req.Role, Permissions: req.Permissions}, nil
		},
	}

	r := newTestRouter(adminClaims())
	h := api.NewUserHandler(repo, testLogger())
	r.POST("/users", h.Create)

	body := `{"username":"carla","password":"secret1","role":"user","permissions":{"registries":{"create":true}}}`
	w := doRequest(r, http.MethodPost, "/users", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	if strings.Contains(w.Body.String(), "secret1") {
		t.Error("response must not echo the password")
	}

	var user models.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if !user.Permissions.Allows(models.ResourceRegistries, models.ActionCreate) {
		t.Error("expected registries.create permission")
	}

	if user.Permissions.Allows(models.ResourceWorkLogs, models.ActionDelete) {
		t.Error("unset permissions must deny")
	}
}

func TestUserCreate_ShortPassword(t *testing.T) {
	t.Parallel()

	r := newTestRouter(adminClaims())
	h := api.NewUserHandler(&mockUserRepo{}, testLogger())
	r.POST("/users", h.Create)

	w := doRequest(r, http.MethodPost, "/users", `{"username":"carla","password":"abc","role":"user"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{
		createFn: func(_ context.Context, _ int64, _ models.CreateUserRequest) (*models.User, error) {
			return nil, models.ErrDuplicateKey
		},
	}

	r := newTestRouter(adminClaims())
	h := api.NewUserHandler(repo, testLogger())
	r.POST("/users", h.Create)

	w := doRequest(r, http.MethodPost, "/users", `{"username":"carla","password":"secret1","role":"user"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUserChangePassword_TargetsCaller(t *testing.T) {
	t.Parallel()

	var gotActor int64
	var gotPassword string

	repo := &mockUserRepo{
		changePasswordFn: func(_ context.Context, actorID int64, password string) error {
			gotActor = actorID
			gotPassword = password

			return nil
		},
	}

	r := newTestRouter(adminClaims())
	h := api.NewUserHandler(repo, testLogger())
	r.PUT("/users/password", h.ChangePassword)

	w := doRequest(r, http.MethodPut, "/users/password", `{"password":"newsecret"}`)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}

	if gotActor != 1 || gotPassword != "newsecret" {
		t.Errorf("expected actor 1 with new password, got %d %q", gotActor, gotPassword)
	}
}

func TestUserChangePassword_Unauthenticated(t *testing.T) {
	t.Parallel()

	r := newTestRouter(nil)
	h := api.NewUserHandler(&mockUserRepo{}, testLogger())
	r.PUT("/users/password", h.ChangePassword)

	w := doRequest(r, http.MethodPut, "/users/password", `{"password":"newsecret"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUserUpdate_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{
		updateFn: func(_ context.Context, _, _ int64, _ models.UpdateUserRequest) (*models.User, error) {
			return nil, models.ErrUserNotFound
		},
	}

	r := newTestRouter(adminClaims())
	h := api.NewUserHandler(repo, testLogger())
	r.PUT("/users/:id", h.Update)

	w := doRequest(r, http.MethodPut, "/users/99", `{"role":"admin"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
