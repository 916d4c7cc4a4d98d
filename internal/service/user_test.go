package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fieldledger/fieldledger/internal/auth"
	"github.com/fieldledger/fieldledger/internal/models"
)

func TestUserService_CreateHashesPasswordAndScrubsAudit(t *testing.T) {
	var storedHash string
	store := &mockUserStore{
		createUser: func(_ context.Context, username, passwordHash, role string, perms models.Permissions) (*models.User, error) {
			storedHash = passwordHash
			return &models.User{ID: 5, Username: username, Role: role, Permissions: perms}, nil
		},
	}
	enq := &capturingEnqueuer{}
	svc := NewUserService(store, enq, testLog())

	_, err := svc.CreateUser(context.Background(), 1, models.CreateUserRequest{
		Username: "alice",
		Password: "hunter22",
		Role:     models.RoleUser,
	})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}

	if storedHash == "hunter22" || storedHash == "" {
		t.Fatal("password must be stored as a hash")
	}

	if !auth.CheckPassword(storedHash, "hunter22") {
		t.Error("stored hash must verify the original password")
	}

	jobs := enq.getJobs()
	if len(jobs) != 1 {
		t.Fatalf("expected 1 audit job, got %d", len(jobs))
	}

	if _, ok := jobs[0].Details["password"]; ok {
		t.Error("audit details must never include the password")
	}

	if jobs[0].Details["username"] != "alice" {
		t.Errorf("expected username in details, got %v", jobs[0].Details)
	}
}

func TestUserService_UpdateWithoutPasswordKeepsHash(t *testing.T) {
	var gotUpd models.UserUpdate
	store := &mockUserStore{
		updateUser: func(_ context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
			gotUpd = upd
			return &models.User{ID: id}, nil
		},
	}
	svc := NewUserService(store, &capturingEnqueuer{}, testLog())

	role := models.RoleAdmin
	_, err := svc.UpdateUser(context.Background(), 1, 5, models.UpdateUserRequest{Role: &role})
	if err != nil {
		t.Fatalf("updating user: %v", err)
	}

	if gotUpd.PasswordHash != nil {
		t.Error("omitted password must not touch the stored hash")
	}

	if gotUpd.Role == nil || *gotUpd.Role != models.RoleAdmin {
		t.Errorf("expected role change, got %+v", gotUpd)
	}
}

func TestUserService_ChangePasswordRecordsUpdatePassword(t *testing.T) {
	store := &mockUserStore{
		updatePassword: func(_ context.Context, _ int64, passwordHash string) error {
			if !auth.CheckPassword(passwordHash, "newsecret") {
				t.Error("expected hash of the new password")
			}
			return nil
		},
	}
	enq := &capturingEnqueuer{}
	svc := NewUserService(store, enq, testLog())

	if err := svc.ChangePassword(context.Background(), 5, "newsecret"); err != nil {
		t.Fatalf("changing password: %v", err)
	}

	jobs := enq.getJobs()
	if len(jobs) != 1 {
		t.Fatalf("expected 1 audit job, got %d", len(jobs))
	}

	job := jobs[0]
	if job.Action != models.AuditUpdatePassword || job.ActorID != 5 || job.EntityID != 5 || job.Details != nil {
		t.Errorf("unexpected audit job: %+v", job)
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	known := &models.User{ID: 9, Username: "alice", PasswordHash: hash, Role: models.RoleUser}
	store := &mockUserStore{
		getUserByUsername: func(_ context.Context, username string) (*models.User, error) {
			if username == "alice" {
				return known, nil
			}
			return nil, models.ErrUserNotFound
		},
	}

	tm := auth.NewTokenManager([]byte("0123456789abcdef0123456789abcdef"), 0)
	svc := NewAuthService(store, tm, testLog())

	user, token, err := svc.Login(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if user.ID != 9 || token == "" {
		t.Fatalf("unexpected login result: user=%+v token=%q", user, token)
	}

	claims, err := tm.Parse(token)
	if err != nil || claims.UserID != 9 {
		t.Errorf("issued token must parse back to the user, got %v / %v", claims, err)
	}

	if _, _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "nobody", "x"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}
