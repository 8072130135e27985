package handler

import (
	"net/http"
	"strings"

	"nagarseva/backend/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	userContextKey   = "current_user"
	claimsContextKey = "token_claims"
)

// AuthRequired verifies the Bearer token, rejects revoked tokens and loads
// the full user row into the request-scoped context. Every downstream
// handler reads the actor from here instead of any ambient state.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		revoked, err := h.Storage.IsTokenRevoked(claims.JTI)
		if err != nil || revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := h.Storage.GetUserByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(userContextKey, user)
		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RoleRequired gates a route to the given roles. It assumes AuthRequired ran.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired,
// or nil on unauthenticated requests.
func CurrentUser(c *gin.Context) *models.User {
	user, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	u, _ := user.(*models.User)
	return u
}

func currentClaims(c *gin.Context) *tokenClaims {
	claims, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	tc, _ := claims.(*tokenClaims)
	return tc
}
