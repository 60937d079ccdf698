package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoppee-dev/shoppee-api/token"
)

// RequireAuth rejects requests without a valid bearer token and makes
// the principal available to handlers as "user_id".
func RequireAuth(c *gin.Context) {
	clientToken := c.GetHeader("Authorization")
	if clientToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	claims, err := token.ValidateToken(clientToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", claims.UserID)
	c.Next()
}

// OptionalAuth sets "user_id" when a valid token is present and lets
// the request through either way. Browse pages use it to render the
// guest cart placeholder for anonymous callers.
func OptionalAuth(c *gin.Context) {
	clientToken := c.GetHeader("Authorization")
	if clientToken != "" {
		if claims, err := token.ValidateToken(clientToken); err == nil {
			c.Set("user_id", claims.UserID)
		}
	}
	c.Next()
}
