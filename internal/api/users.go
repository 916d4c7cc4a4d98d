package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// UserHandler serves user management endpoints. All routes except
// ChangePassword sit behind the admin-only route group.
type UserHandler struct {
	repo UserRepository
	log  *logrus.Logger
}

// NewUserHandler creates a UserHandler with the given service and logger.
func NewUserHandler(repo UserRepository, log *logrus.Logger) *UserHandler {
	return &UserHandler{repo: repo, log: log}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.ListUsers(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing users")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	user, err := h.repo.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "user not found")

			return
		}

		h.log.WithError(err).Error("getting user")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	actor := actorID(c)
	if actor == 0 {
		return
	}

	user, err := h.repo.CreateUser(c.Request.Context(), actor, req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "username already taken")

			return
		}

		h.log.WithError(err).Error("creating user")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "user.create", "user_id": actor, "created_id": user.ID}).Info("handled")

	c.JSON(http.StatusCreated, user)
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	actor := actorID(c)
	if actor == 0 {
		return
	}

	user, err := h.repo.UpdateUser(c.Request.Context(), actor, id, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		case errors.Is(err, models.ErrDuplicateKey):
			respondError(c, http.StatusConflict, ErrCodeConflict, "username already taken")
		default:
			h.log.WithError(err).Error("updating user")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{"action": "user.update", "user_id": actor, "updated_id": id}).Info("handled")

	c.JSON(http.StatusOK, user)
}

// ChangePassword handles PUT /api/users/password. Any authenticated user may
// change their own password; the target is always the caller.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	actor := actorID(c)
	if actor == 0 {
		return
	}

	if err := h.repo.ChangePassword(c.Request.Context(), actor, req.Password); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "user not found")

			return
		}

		h.log.WithError(err).Error("changing password")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "user.change_password", "user_id": actor}).Info("handled")

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	actor := actorID(c)
	if actor == 0 {
		return
	}

	if err := h.repo.DeleteUser(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "user not found")

			return
		}

		h.log.WithError(err).Error("deleting user")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "user.delete", "user_id": actor, "deleted_id": id}).Info("handled")

	c.Status(http.StatusNoContent)
}
