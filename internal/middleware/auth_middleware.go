package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stakedraw/stakedraw-backend/internal/config"
	"github.com/stakedraw/stakedraw-backend/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextAddressKey = "address"
	ContextRoleKey    = "role"
)

// JWTAuthMiddleware authenticates the request and resolves the caller identity.
// Handlers read the address from the context and pass it to services explicitly.
func JWTAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1], cfg)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token: " + err.Error()})
			c.Abort()
			return
		}

		address, ok := claims["address"].(string)
		if !ok || address == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token carries no account address"})
			c.Abort()
			return
		}

		c.Set(ContextAddressKey, address)
		if role, ok := claims["role"].(string); ok {
			c.Set(ContextRoleKey, role)
		}
		c.Next()
	}
}

// CallerAddress returns the authenticated caller's address from the request context
func CallerAddress(c *gin.Context) string {
	if address, ok := c.Get(ContextAddressKey); ok {
		if s, ok := address.(string); ok {
			return s
		}
	}
	return ""
}
