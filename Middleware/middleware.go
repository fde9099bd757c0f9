package Middleware

import (
	"errors"
	"net/http"

	"DoctorsPortal/Models"
	"DoctorsPortal/Utils/Token"

	"github.com/gin-gonic/gin"
)

// DecodedEmail is the gin context key the authenticated gate sets for
// downstream handlers.
const DecodedEmail = "decodedEmail"

// JwtAuthMiddleware rejects a missing credential as 401 and a bad one
// as 403, then attaches the verified email claim to the context.
func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := Token.ExtractTokenEmail(c)
		if errors.Is(err, Token.ErrNoToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}
		c.Set(DecodedEmail, email)
		c.Next()
	}
}

// AdminCheck stacks after JwtAuthMiddleware and requires the caller's
// user record to carry the admin role. An unknown user is plain
// non-admin, not an error.
func AdminCheck(users Models.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(DecodedEmail)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		user, err := users.ByEmail(c.Request.Context(), email)
		if errors.Is(err, Models.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}
		c.Next()
	}
}
