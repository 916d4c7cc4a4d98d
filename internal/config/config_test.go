package config

import (
	"strings"
	"testing"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://app:pw@localhost:5432/fieldledger")
	t.Setenv("JWT_SECRET", testJWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "3040" {
		t.Errorf("Port = %q, want default 3040", cfg.Port)
	}
	if cfg.TokenTTL.Hours() != 8 {
		t.Errorf("TokenTTL = %v, want 8h", cfg.TokenTTL)
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("AdminUsername = %q, want admin", cfg.AdminUsername)
	}
	if cfg.AuditQueueSize != 1000 {
		t.Errorf("AuditQueueSize = %d, want 1000", cfg.AuditQueueSize)
	}
	if cfg.Addr() != "127.0.0.1:3040" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", testJWTSecret)

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("Load without DATABASE_URL: %v", err)
	}
}

func TestLoadRejectsShortJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:pw@localhost:5432/fieldledger")
	t.Setenv("JWT_SECRET", "too-short")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("Load with short JWT_SECRET: %v", err)
	}
}

func TestLoadRejectsWildcardCORS(t *testing.T) {
	setValidEnv(t)
	t.Setenv("CORS_ORIGINS", "*")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "CORS_ORIGINS") {
		t.Errorf("Load with wildcard CORS: %v", err)
	}
}

func TestLoadRejectsBadTokenTTL(t *testing.T) {
	setValidEnv(t)
	t.Setenv("TOKEN_TTL", "eight hours")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "TOKEN_TTL") {
		t.Errorf("Load with bad TOKEN_TTL: %v", err)
	}
}

func TestSecretRedaction(t *testing.T) {
	t.Parallel()

	s := Secret("hunter2")
	if s.String() != "[REDACTED]" {
		t.Errorf("String() = %q", s.String())
	}
	if s.Value() != "hunter2" {
		t.Errorf("Value() = %q", s.Value())
	}

	text, err := s.MarshalText()
	if err != nil || string(text) != "[REDACTED]" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
}
