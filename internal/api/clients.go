package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// ClientHandler serves client CRUD endpoints.
type ClientHandler struct {
	repo ClientRepository
	log  *logrus.Logger
}

// NewClientHandler creates a ClientHandler with the given service and logger.
func NewClientHandler(repo ClientRepository, log *logrus.Logger) *ClientHandler {
	return &ClientHandler{repo: repo, log: log}
}

// List handles GET /api/clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.ListClients(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing clients")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	client, err := h.repo.GetClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrClientNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "client not found")

			return
		}

		h.log.WithError(err).Error("getting client")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, client)
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req models.CreateClientRequest
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

	client, err := h.repo.CreateClient(c.Request.Context(), actor, req)
	if err != nil {
		h.log.WithError(err).Error("creating client")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "client.create", "user_id": actor, "client_id": client.ID}).Info("handled")

	c.JSON(http.StatusCreated, client)
}

// Update handles PUT /api/clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req models.UpdateClientRequest
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

	client, err := h.repo.UpdateClient(c.Request.Context(), actor, id, req)
	if err != nil {
		if errors.Is(err, models.ErrClientNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "client not found")

			return
		}

		h.log.WithError(err).Error("updating client")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "client.update", "user_id": actor, "client_id": id}).Info("handled")

	c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	actor := actorID(c)
	if actor == 0 {
		return
	}

	if err := h.repo.DeleteClient(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, models.ErrClientNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "client not found")

			return
		}

		h.log.WithError(err).Error("deleting client")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "client.delete", "user_id": actor, "client_id": id}).Info("handled")

	c.Status(http.StatusNoContent)
}
