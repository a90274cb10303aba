package api

import (
	"errors"
	"net/http"

	"github.com/ankush0407/salon-backend/internal/repository"
	"github.com/ankush0407/salon-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(services *service.Services, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		services: services,
		log:      log.With().Str("handler", "customer").Logger(),
	}
}

type customerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// List handles GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.services.Customer.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list customers")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Create handles POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	customer, err := h.services.Customer.Create(c.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create customer")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// Update handles PUT /api/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	customer, err := h.services.Customer.Update(c.Request.Context(), c.Param("id"), req.Name, req.Email, req.Phone)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("customer_id", c.Param("id")).Msg("Failed to update customer")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	err := h.services.Customer.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("customer_id", c.Param("id")).Msg("Failed to delete customer")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
