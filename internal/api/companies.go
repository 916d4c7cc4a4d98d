package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// CompanyHandler serves company CRUD endpoints.
type CompanyHandler struct {
	repo CompanyRepository
	log  *logrus.Logger
}

// NewCompanyHandler creates a CompanyHandler with the given service and logger.
func NewCompanyHandler(repo CompanyRepository, log *logrus.Logger) *CompanyHandler {
	return &CompanyHandler{repo: repo, log: log}
}

// List handles GET /api/companies.
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.repo.ListCompanies(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing companies")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// Get handles GET /api/companies/:id.
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	company, err := h.repo.GetCompany(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "company not found")

			return
		}

		h.log.WithError(err).Error("getting company")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, company)
}

// Create handles POST /api/companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req models.CreateCompanyRequest
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

	company, err := h.repo.CreateCompany(c.Request.Context(), actor, req)
	if err != nil {
		h.log.WithError(err).Error("creating company")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "company.create", "user_id": actor, "company_id": company.ID}).Info("handled")

	c.JSON(http.StatusCreated, company)
}

// Update handles PUT /api/companies/:id.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req models.UpdateCompanyRequest
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

	company, err := h.repo.UpdateCompany(c.Request.Context(), actor, id, req)
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "company not found")

			return
		}

		h.log.WithError(err).Error("updating company")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "company.update", "user_id": actor, "company_id": id}).Info("handled")

	c.JSON(http.StatusOK, company)
}

// Delete handles DELETE /api/companies/:id.
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	actor := actorID(c)
	if actor == 0 {
		return
	}

	if err := h.repo.DeleteCompany(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "company not found")

			return
		}

		h.log.WithError(err).Error("deleting company")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "company.delete", "user_id": actor, "company_id": id}).Info("handled")

	c.Status(http.StatusNoContent)
}
