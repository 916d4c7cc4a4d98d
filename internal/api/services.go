package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// CatalogHandler serves the service catalog CRUD endpoints.
type CatalogHandler struct {
	repo CatalogRepository
	log  *logrus.Logger
}

// NewCatalogHandler creates a CatalogHandler with the given service and logger.
func NewCatalogHandler(repo CatalogRepository, log *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{repo: repo, log: log}
}

// List handles GET /api/services.
func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing services")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// Get handles GET /api/services/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	svc, err := h.repo.GetService(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "service not found")

			return
		}

		h.log.WithError(err).Error("getting service")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, svc)
}

// Create handles POST /api/services.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req models.CreateServiceRequest
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

	svc, err := h.repo.CreateService(c.Request.Context(), actor, req)
	if err != nil {
		h.log.WithError(err).Error("creating service")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "service.create", "user_id": actor, "service_id": svc.ID}).Info("handled")

	c.JSON(http.StatusCreated, svc)
}

// Update handles PUT /api/services/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req models.UpdateServiceRequest
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

	svc, err := h.repo.UpdateService(c.Request.Context(), actor, id, req)
	if err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "service not found")

			return
		}

		h.log.WithError(err).Error("updating service")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "service.update", "user_id": actor, "service_id": id}).Info("handled")

	c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /api/services/:id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	actor := actorID(c)
	if actor == 0 {
		return
	}

	if err := h.repo.DeleteService(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "service not found")

			return
		}

		h.log.WithError(err).Error("deleting service")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "service.delete", "user_id": actor, "service_id": id}).Info("handled")

	c.Status(http.StatusNoContent)
}
