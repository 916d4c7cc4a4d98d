package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// WorkLogHandler serves work log CRUD endpoints.
type WorkLogHandler struct {
	repo WorkLogRepository
	log  *logrus.Logger
}

// NewWorkLogHandler creates a WorkLogHandler with the given service and logger.
func NewWorkLogHandler(repo WorkLogRepository, log *logrus.Logger) *WorkLogHandler {
	return &WorkLogHandler{repo: repo, log: log}
}

// List handles GET /api/work-logs.
func (h *WorkLogHandler) List(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "50"), 50)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	logs, hasMore, err := h.repo.ListWorkLogs(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing work logs")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"work_logs": logs, "has_more": hasMore})
}

// Get handles GET /api/work-logs/:id.
func (h *WorkLogHandler) Get(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	entry, err := h.repo.GetWorkLog(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrWorkLogNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "work log not found")

			return
		}

		h.log.WithError(err).Error("getting work log")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, entry)
}

// Create handles POST /api/work-logs.
func (h *WorkLogHandler) Create(c *gin.Context) {
	var req models.CreateWorkLogRequest
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

	wl, err := h.repo.CreateWorkLog(c.Request.Context(), actor, req)
	if err != nil {
		h.log.WithError(err).Error("creating work log")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "work_log.create", "user_id": actor, "work_log_id": wl.ID}).Info("handled")

	c.JSON(http.StatusCreated, wl)
}

// Update handles PUT /api/work-logs/:id. Status transitions, including
// marking a log paid or reverting it to pending, go through here like any
// other field change.
func (h *WorkLogHandler) Update(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req models.UpdateWorkLogRequest
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

	wl, err := h.repo.UpdateWorkLog(c.Request.Context(), actor, id, req)
	if err != nil {
		if errors.Is(err, models.ErrWorkLogNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "work log not found")

			return
		}

		h.log.WithError(err).Error("updating work log")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "work_log.update", "user_id": actor, "work_log_id": id}).Info("handled")

	c.JSON(http.StatusOK, wl)
}

// Delete handles DELETE /api/work-logs/:id.
func (h *WorkLogHandler) Delete(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	actor := actorID(c)
	if actor == 0 {
		return
	}

	if err := h.repo.DeleteWorkLog(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, models.ErrWorkLogNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "work log not found")

			return
		}

		h.log.WithError(err).Error("deleting work log")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "work_log.delete", "user_id": actor, "work_log_id": id}).Info("handled")

	c.Status(http.StatusNoContent)
}
