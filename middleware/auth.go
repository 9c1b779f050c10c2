package middleware

import (
	"net/http"
	"strings"

	"sangamstay/models"
	"sangamstay/utils"

	"github.com/gin-gonic/gin"
)

// Keys under which the authenticated principal is stored on the context.
const (
	CtxUserID = "userID"
	CtxRole   = "userRole"
)

// RequireAuth validates the bearer token and stores the {id, role} principal
// on the context. Tokens are also accepted via ?token= for link-style flows.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token missing"})
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// Principal rebuilds the acting user from the context set by RequireAuth.
func Principal(c *gin.Context) (uint, string) {
	id, _ := c.Get(CtxUserID)
	userID, _ := id.(uint)
	return userID, c.GetString(CtxRole)
}
