package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/fieldledger/fieldledger/internal/api"
	"github.com/fieldledger/fieldledger/internal/models"
	"github.com/fieldledger/fieldledger/internal/security"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	auth := &mockAuthenticator{
		loginFn: func(_ context.Context, username, _ string) (*models.User, string, error) {
			return &models.User{ID: 9, Username: username, Role: models.RoleUser}, "tok-123", nil
		},
	}

	r := newTestRouter(nil)
	h := api.NewAuthHandler(auth, nil, testLogger())
	r.POST("/auth/login", h.Login)

	w := doRequest(r, http.MethodPost, "/auth/login", `{"username":"ana","password":"secret1"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if resp.Token != "tok-123" || resp.User.Username != "ana" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	auth := &mockAuthenticator{
		loginFn: func(_ context.Context, _, _ string) (*models.User, string, error) {
			return nil, "", models.ErrInvalidCredentials
		},
	}

	r := newTestRouter(nil)
	h := api.NewAuthHandler(auth, nil, testLogger())
	r.POST("/auth/login", h.Login)

	w := doRequest(r, http.MethodPost, "/auth/login", `{"username":"ana","password":"wrong-1"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	r := newTestRouter(nil)
	h := api.NewAuthHandler(&mockAuthenticator{}, nil, testLogger())
	r.POST("/auth/login", h.Login)

	w := doRequest(r, http.MethodPost, "/auth/login", `{"username":"ana"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogin_LockoutAfterRepeatedFailures(t *testing.T) {
	t.Parallel()

	auth := &mockAuthenticator{
		loginFn: func(_ context.Context, _, _ string) (*models.User, string, error) {
			return nil, "", models.ErrInvalidCredentials
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	guard := security.NewBruteForceGuard(ctx, testLogger())

	r := newTestRouter(nil)
	h := api.NewAuthHandler(auth, guard, testLogger())
	r.POST("/auth/login", h.Login)

	for i := 0; i < security.BruteForceMaxAttempts; i++ {
		w := doRequest(r, http.MethodPost, "/auth/login", fmt.Sprintf(`{"username":"ana","password":"wrong-%d"}`, i))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i, w.Code)
		}
	}

	w := doRequest(r, http.MethodPost, "/auth/login", `{"username":"ana","password":"wrong-x"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after lockout, got %d: %s", w.Code, w.Body.String())
	}

	// Other usernames are unaffected.
	w = doRequest(r, http.MethodPost, "/auth/login", `{"username":"bob","password":"wrong-x"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for other username, got %d", w.Code)
	}
}
