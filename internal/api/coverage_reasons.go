package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// CoverageReasonHandler serves coverage reason CRUD endpoints.
type CoverageReasonHandler struct {
	repo CoverageReasonRepository
	log  *logrus.Logger
}

// NewCoverageReasonHandler creates a CoverageReasonHandler with the given service and logger.
func NewCoverageReasonHandler(repo CoverageReasonRepository, log *logrus.Logger) *CoverageReasonHandler {
	return &CoverageReasonHandler{repo: repo, log: log}
}

// List handles GET /api/coverage-reasons.
func (h *CoverageReasonHandler) List(c *gin.Context) {
	reasons, err := h.repo.ListCoverageReasons(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing coverage reasons")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"coverage_reasons": reasons})
}

// Get handles GET /api/coverage-reasons/:id.
func (h *CoverageReasonHandler) Get(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	reason, err := h.repo.GetCoverageReason(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCoverageReasonNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "coverage reason not found")

			return
		}

		h.log.WithError(err).Error("getting coverage reason")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, reason)
}

// Create handles POST /api/coverage-reasons.
func (h *CoverageReasonHandler) Create(c *gin.Context) {
	var req models.CreateCoverageReasonRequest
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

	reason, err := h.repo.CreateCoverageReason(c.Request.Context(), actor, req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "coverage reason with this name already exists")

			return
		}

		h.log.WithError(err).Error("creating coverage reason")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "coverage_reason.create", "user_id": actor, "coverage_reason_id": reason.ID}).Info("handled")

	c.JSON(http.StatusCreated, reason)
}

// Update handles PUT /api/coverage-reasons/:id.
func (h *CoverageReasonHandler) Update(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req models.UpdateCoverageReasonRequest
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

	reason, err := h.repo.UpdateCoverageReason(c.Request.Context(), actor, id, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCoverageReasonNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "coverage reason not found")
		case errors.Is(err, models.ErrDuplicateKey):
			respondError(c, http.StatusConflict, ErrCodeConflict, "coverage reason with this name already exists")
		default:
			h.log.WithError(err).Error("updating coverage reason")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{"action": "coverage_reason.update", "user_id": actor, "coverage_reason_id": id}).Info("handled")

	c.JSON(http.StatusOK, reason)
}

// Delete handles DELETE /api/coverage-reasons/:id.
func (h *CoverageReasonHandler) Delete(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	actor := actorID(c)
	if actor == 0 {
		return
	}

	if err := h.repo.DeleteCoverageReason(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, models.ErrCoverageReasonNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "coverage reason not found")

			return
		}

		h.log.WithError(err).Error("deleting coverage reason")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "coverage_reason.delete", "user_id": actor, "coverage_reason_id": id}).Info("handled")

	c.Status(http.StatusNoContent)
}
