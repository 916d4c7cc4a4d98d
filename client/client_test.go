package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL, WithToken("test-token"))
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "ok", Version: "1.2.0"})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("got status %q, want ok", resp.Status)
	}
}

func TestLogin_StoresToken(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/auth/login": func(w http.ResponseWriter, r *http.Request) {
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			if req["username"] != "ana" {
				jsonResponse(w, 401, map[string]string{"code": "unauthorized", "message": "invalid credentials"})
				return
			}
			jsonResponse(w, 200, LoginResponse{Token: "tok-abc", User: User{ID: 9, Username: "ana"}})
		},
		"GET /api/companies": func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok-abc" {
				jsonResponse(w, 403, map[string]string{"code": "forbidden", "message": "invalid or expired token"})
				return
			}
			jsonResponse(w, 200, map[string]any{"companies": []Company{}})
		},
	})

	ctx := context.Background()

	resp, err := c.Login(ctx, "ana", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.Token != "tok-abc" {
		t.Errorf("got token %q, want tok-abc", resp.Token)
	}

	// Subsequent calls carry the stored token.
	if _, err := c.Companies.List(ctx); err != nil {
		t.Fatalf("List after login error: %v", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/auth/login": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 401, map[string]string{"code": "unauthorized", "message": "invalid credentials"})
		},
	})

	_, err := c.Login(context.Background(), "ana", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsUnauthorized(err) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestCompaniesCRUD(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/companies": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]any{"companies": []Company{{ID: 1, Name: "Acme"}}})
		},
		"POST /api/companies": func(w http.ResponseWriter, r *http.Request) {
			var req CreateCompanyRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 201, Company{ID: 2, Name: req.Name})
		},
		"GET /api/companies/1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Company{ID: 1, Name: "Acme"})
		},
		"PUT /api/companies/1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Company{ID: 1, Name: "Acme Ltd"})
		},
		"DELETE /api/companies/1": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(204)
		},
	})

	ctx := context.Background()

	companies, err := c.Companies.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(companies) != 1 || companies[0].Name != "Acme" {
		t.Errorf("unexpected list: %+v", companies)
	}

	created, err := c.Companies.Create(ctx, &CreateCompanyRequest{Name: "Globex"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID != 2 || created.Name != "Globex" {
		t.Errorf("unexpected created: %+v", created)
	}

	name := "Acme Ltd"
	updated, err := c.Companies.Update(ctx, 1, &UpdateCompanyRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Name != "Acme Ltd" {
		t.Errorf("unexpected updated: %+v", updated)
	}

	if err := c.Companies.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestWorkLogs_ListAndMarkPaid(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/work-logs": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("limit") != "2" {
				t.Errorf("expected limit=2, got %q", r.URL.Query().Get("limit"))
			}
			jsonResponse(w, 200, map[string]any{
				"work_logs": []WorkLogEntry{{WorkLog: WorkLog{ID: 5, Date: "2026-08-01", Status: StatusPending}}},
				"has_more":  true,
			})
		},
		"PUT /api/work-logs/5": func(w http.ResponseWriter, r *http.Request) {
			var req UpdateWorkLogRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			if req.Status == nil || *req.Status != StatusPaid {
				t.Errorf("expected status paid, got %v", req.Status)
			}
			jsonResponse(w, 200, WorkLog{ID: 5, Date: "2026-08-01", Status: StatusPaid})
		},
	})

	ctx := context.Background()

	logs, hasMore, err := c.WorkLogs.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if !hasMore || len(logs) != 1 {
		t.Errorf("unexpected list: hasMore=%v len=%d", hasMore, len(logs))
	}

	wl, err := c.WorkLogs.MarkPaid(ctx, 5)
	if err != nil {
		t.Fatalf("MarkPaid error: %v", err)
	}
	if wl.Status != StatusPaid {
		t.Errorf("got status %q, want paid", wl.Status)
	}
}

func TestErrorHelpers(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/companies/99": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 404, map[string]string{"code": "not_found", "message": "company not found"})
		},
		"POST /api/coverage-reasons": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 409, map[string]string{"code": "conflict", "message": "coverage reason with this name already exists"})
		},
	})

	ctx := context.Background()

	_, err := c.Companies.Get(ctx, 99)
	if !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}

	_, err = c.CoverageReasons.Create(ctx, &CreateCoverageReasonRequest{Name: "Falta"})
	if !IsConflict(err) {
		t.Errorf("expected conflict, got %v", err)
	}

	var apiErr *APIError
	if e, ok := err.(*APIError); ok {
		apiErr = e
	}
	if apiErr == nil || apiErr.Code != "conflict" {
		t.Errorf("unexpected error shape: %v", err)
	}
}
