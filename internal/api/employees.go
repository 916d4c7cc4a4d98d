package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// EmployeeHandler serves employee CRUD endpoints.
type EmployeeHandler struct {
	repo EmployeeRepository
	log  *logrus.Logger
}

// NewEmployeeHandler creates an EmployeeHandler with the given service and logger.
func NewEmployeeHandler(repo EmployeeRepository, log *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, log: log}
}

// List handles GET /api/employees.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.repo.ListEmployees(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing employees")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// Get handles GET /api/employees/:id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	employee, err := h.repo.GetEmployee(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrEmployeeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "employee not found")

			return
		}

		h.log.WithError(err).Error("getting employee")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, employee)
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req models.CreateEmployeeRequest
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

	employee, err := h.repo.CreateEmployee(c.Request.Context(), actor, req)
	if err != nil {
		h.log.WithError(err).Error("creating employee")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "employee.create", "user_id": actor, "employee_id": employee.ID}).Info("handled")

	c.JSON(http.StatusCreated, employee)
}

// Update handles PUT /api/employees/:id.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req models.UpdateEmployeeRequest
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

	employee, err := h.repo.UpdateEmployee(c.Request.Context(), actor, id, req)
	if err != nil {
		if errors.Is(err, models.ErrEmployeeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "employee not found")

			return
		}

		h.log.WithError(err).Error("updating employee")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "employee.update", "user_id": actor, "employee_id": id}).Info("handled")

	c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	actor := actorID(c)
	if actor == 0 {
		return
	}

	if err := h.repo.DeleteEmployee(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, models.ErrEmployeeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "employee not found")

			return
		}

		h.log.WithError(err).Error("deleting employee")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "employee.delete", "user_id": actor, "employee_id": id}).Info("handled")

	c.Status(http.StatusNoContent)
}
