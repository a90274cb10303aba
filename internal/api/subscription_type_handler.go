package api

import (
	"errors"
	"net/http"

	"github.com/ankush0407/salon-backend/internal/repository"
	"github.com/ankush0407/salon-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SubscriptionTypeHandler handles subscription type endpoints
type SubscriptionTypeHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSubscriptionTypeHandler creates a new SubscriptionTypeHandler
func NewSubscriptionTypeHandler(services *service.Services, log zerolog.Logger) *SubscriptionTypeHandler {
	return &SubscriptionTypeHandler{
		services: services,
		log:      log.With().Str("handler", "subscription_type").Logger(),
	}
}

type subscriptionTypeRequest struct {
	Name   string         `json:"name"`
	Visits stringOrNumber `json:"visits"`
}

// List handles GET /api/subscription-types
func (h *SubscriptionTypeHandler) List(c *gin.Context) {
	types, err := h.services.SubscriptionType.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list subscription types")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

// Create handles POST /api/subscription-types (owner only)
func (h *SubscriptionTypeHandler) Create(c *gin.Context) {
	var req subscriptionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	st, err := h.services.SubscriptionType.Create(c.Request.Context(), req.Name, req.Visits.String())
	if errors.Is(err, service.ErrMissingFields) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and visits are required"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create subscription type")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, st)
}

// Delete handles DELETE /api/subscription-types/:id (owner only)
func (h *SubscriptionTypeHandler) Delete(c *gin.Context) {
	err := h.services.SubscriptionType.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Subscription type not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("type_id", c.Param("id")).Msg("Failed to delete subscription type")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription type deleted successfully"})
}
