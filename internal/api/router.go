package api

import (
	"net/http"
	"time"

	"github.com/ankush0407/salon-backend/internal/auth"
	"github.com/ankush0407/salon-backend/internal/config"
	"github.com/ankush0407/salon-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, tokens *auth.JWTManager, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.CORS.AllowedOrigins))

	// Handlers
	authHandler := NewAuthHandler(services, log)
	customerHandler := NewCustomerHandler(services, log)
	typeHandler := NewSubscriptionTypeHandler(services, log)
	subscriptionHandler := NewSubscriptionHandler(services, log)

	// Health check
	router.GET("/", healthCheck)
	router.GET("/health", healthCheck)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/register", authHandler.Register)
		}

		customers := api.Group("/customers", authenticate(tokens))
		{
			customers.GET("", customerHandler.List)
			customers.POST("", customerHandler.Create)
			customers.PUT("/:id", customerHandler.Update)
			customers.DELETE("/:id", customerHandler.Delete)
		}

		types := api.Group("/subscription-types", authenticate(tokens))
		{
			types.GET("", typeHandler.List)
			types.POST("", requireOwner(), typeHandler.Create)
			types.DELETE("/:id", requireOwner(), typeHandler.Delete)
		}

		subscriptions := api.Group("/subscriptions", authenticate(tokens))
		{
			subscriptions.GET("/customer/:customerId", subscriptionHandler.ListByCustomer)
			subscriptions.POST("", subscriptionHandler.Create)
			subscriptions.POST("/:id/redeem", subscriptionHandler.RedeemVisit)
			subscriptions.PUT("/:id/visit/:visitIndex", subscriptionHandler.UpdateVisitNote)
			subscriptions.DELETE("/:id/visit/:visitIndex", subscriptionHandler.DeleteVisit)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Salon API is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"message": "Something went wrong!",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware tags every request with an id, echoed back to the
// client and attached to the request log line.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("request_id", c.GetString("request_id")).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware allows the configured browser origins
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	wildcard := false
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (wildcard || allowed[origin]) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
