package api

import (
	"net/http"
	"strings"

	"github.com/ankush0407/salon-backend/internal/auth"
	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Context keys for the authenticated identity.
const (
	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
	ctxUserRole  = "user_role"
)

// authenticate extracts and verifies the bearer token, attaching the decoded
// identity to the request context. A missing token is 401, an invalid or
// expired one is 403.
func authenticate(tokens *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(ctxUserID, claims.ID)
		c.Set(ctxUserEmail, claims.Email)
		c.Set(ctxUserRole, claims.Role)
		c.Next()
	}
}

// requireOwner rejects authenticated identities whose role is not OWNER.
func requireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxUserRole) != models.RoleOwner {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Owner only."})
			return
		}
		c.Next()
	}
}
