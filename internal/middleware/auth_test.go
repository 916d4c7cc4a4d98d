package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/auth"
	"github.com/fieldledger/fieldledger/internal/middleware"
	"github.com/fieldledger/fieldledger/internal/models"
)

type mockTokenParser struct {
	valid map[string]*auth.Claims
}

func (m *mockTokenParser) Parse(token string) (*auth.Claims, error) {
	if claims, ok := m.valid[token]; ok {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

func TestBearerAuth(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	parser := &mockTokenParser{valid: map[string]*auth.Claims{
		"good-token": {UserID: 1, Username: "alice", Role: models.RoleUser},
	}}

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{"valid token", "Bearer good-token", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"invalid token", "Bearer bad-token", http.StatusForbidden},
		{"no bearer prefix", "good-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.BearerAuth(parser, log))
			r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("got %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestBearerAuth_SetsClaims(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	parser := &mockTokenParser{valid: map[string]*auth.Claims{
		"t1": {UserID: 42, Username: "bob", Role: models.RoleAdmin},
	}}

	var got *auth.Claims
	r := gin.New()
	r.Use(middleware.BearerAuth(parser, log))
	r.GET("/test", func(c *gin.Context) {
		got = middleware.CurrentClaims(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer t1")
	r.ServeHTTP(w, req)

	if got == nil || got.UserID != 42 || got.Username != "bob" {
		t.Fatalf("expected claims for user 42, got %+v", got)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"abc123", ""},
		{"", ""},
		{"Bearer ", ""},
		{"bearer abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			got := middleware.ExtractBearerToken(c)
			if got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
