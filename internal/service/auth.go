package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/auth"
	"github.com/fieldledger/fieldledger/internal/models"
)

// TokenIssuer signs session tokens (implemented by auth.TokenManager).
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
	log    *logrus.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(users UserStore, tokens TokenIssuer, log *logrus.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Login verifies the credentials and returns the user with a signed token.
// Unknown usernames and wrong passwords both map to ErrInvalidCredentials;
// bcrypt runs against a fixed hash for unknown users so the two failure
// paths cost the same.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			auth.CheckPassword(dummyHash, password)

			return nil, "", models.ErrInvalidCredentials
		}

		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// dummyHash is a bcrypt hash of a random string, used to equalize login
// timing for unknown usernames.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
