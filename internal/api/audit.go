package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// AuditHandler serves read-only audit trail endpoints. Entries are written
// exclusively by the background audit worker.
type AuditHandler struct {
	repo AuditRepository
	log  *logrus.Logger
}

// NewAuditHandler creates an AuditHandler with the given service and logger.
func NewAuditHandler(repo AuditRepository, log *logrus.Logger) *AuditHandler {
	return &AuditHandler{repo: repo, log: log}
}

// List handles GET /api/audit-logs. Supports entity and action filters plus
// limit/offset pagination, newest first.
func (h *AuditHandler) List(c *gin.Context) {
	opts := models.AuditListOpts{
		Entity: c.Query("entity"),
		Action: c.Query("action"),
		Limit:  parseInt(c.DefaultQuery("limit", "50"), 50),
		Offset: parseOffset(c.DefaultQuery("offset", "0")),
	}

	entries, hasMore, err := h.repo.ListAudit(c.Request.Context(), opts)
	if err != nil {
		h.log.WithError(err).Error("listing audit entries")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"audit_logs": entries, "has_more": hasMore})
}
