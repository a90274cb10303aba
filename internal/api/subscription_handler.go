package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ankush0407/salon-backend/internal/repository"
	"github.com/ankush0407/salon-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SubscriptionHandler handles subscription endpoints
type SubscriptionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(services *service.Services, log zerolog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		services: services,
		log:      log.With().Str("handler", "subscription").Logger(),
	}
}

type createSubscriptionRequest struct {
	CustomerID  string         `json:"customerId"`
	Name        string         `json:"name"`
	TotalVisits stringOrNumber `json:"totalVisits"`
}

type visitNoteRequest struct {
	Note string `json:"note"`
}

// ListByCustomer handles GET /api/subscriptions/customer/:customerId
func (h *SubscriptionHandler) ListByCustomer(c *gin.Context) {
	subs, err := h.services.Subscription.ListByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list subscriptions")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Create handles POST /api/subscriptions
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	sub, err := h.services.Subscription.Create(c.Request.Context(), req.CustomerID, req.Name, req.TotalVisits.String())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create subscription")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// RedeemVisit handles POST /api/subscriptions/:id/redeem
func (h *SubscriptionHandler) RedeemVisit(c *gin.Context) {
	var req visitNoteRequest
	// The note is optional; an empty or absent body redeems without one
	_ = c.ShouldBindJSON(&req)

	_, err := h.services.Subscription.RedeemVisit(c.Request.Context(), c.Param("id"), req.Note)
	if err != nil {
		h.respondVisitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Visit redeemed successfully"})
}

// UpdateVisitNote handles PUT /api/subscriptions/:id/visit/:visitIndex
func (h *SubscriptionHandler) UpdateVisitNote(c *gin.Context) {
	visitIndex, ok := h.visitIndex(c)
	if !ok {
		return
	}

	var req visitNoteRequest
	_ = c.ShouldBindJSON(&req)

	_, err := h.services.Subscription.UpdateVisitNote(c.Request.Context(), c.Param("id"), visitIndex, req.Note)
	if err != nil {
		h.respondVisitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Visit updated successfully"})
}

// DeleteVisit handles DELETE /api/subscriptions/:id/visit/:visitIndex
func (h *SubscriptionHandler) DeleteVisit(c *gin.Context) {
	visitIndex, ok := h.visitIndex(c)
	if !ok {
		return
	}

	_, err := h.services.Subscription.DeleteVisit(c.Request.Context(), c.Param("id"), visitIndex)
	if err != nil {
		h.respondVisitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Visit deleted successfully"})
}

// visitIndex parses the :visitIndex path param, responding 400 on garbage.
func (h *SubscriptionHandler) visitIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("visitIndex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid visit index"})
		return 0, false
	}
	return idx, true
}

func (h *SubscriptionHandler) respondVisitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Subscription not found"})
	case errors.Is(err, service.ErrNoVisitsRemaining):
		c.JSON(http.StatusBadRequest, gin.H{"message": "No visits remaining"})
	case errors.Is(err, service.ErrInvalidVisitIndex):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid visit index"})
	default:
		h.log.Error().Err(err).Str("subscription_id", c.Param("id")).Msg("Subscription operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
