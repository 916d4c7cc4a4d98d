package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/metrics"
	"github.com/fieldledger/fieldledger/internal/models"
	"github.com/fieldledger/fieldledger/internal/security"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	auth  Authenticator
	guard *security.BruteForceGuard
	log   *logrus.Logger
}

// NewAuthHandler creates an AuthHandler with the given authenticator and
// brute force guard.
func NewAuthHandler(auth Authenticator, guard *security.BruteForceGuard, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, guard: guard, log: log}
}

// Login handles POST /api/auth/login. Repeated failures for the same
// username trip the brute force guard, which answers 429 until the lockout
// expires. Bad credentials always produce the same generic 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	if h.guard != nil && h.guard.IsBlocked(req.Username) {
		respondError(c, http.StatusTooManyRequests, ErrCodeRateLimited, "too many failed login attempts, try again later")

		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			metrics.LoginFailures.Inc()
			if h.guard != nil {
				h.guard.RecordFailure(req.Username)
			}

			respondError(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")

			return
		}

		h.log.WithError(err).Error("login")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	if h.guard != nil {
		h.guard.Reset(req.Username)
	}

	h.log.WithFields(logrus.Fields{"action": "auth.login", "user_id": user.ID}).Info("handled")

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
