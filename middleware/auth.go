package middleware

import (
	"strings"

	"farmpro/response"
	"farmpro/services"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware validates the Bearer session token and stores its
// claims in the request context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.ParseSessionToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("sessionClaims", claims)
		c.Next()
	}
}

// SessionClaims extracts the claims stored by SessionMiddleware.
func SessionClaims(c *gin.Context) (*services.SessionClaims, bool) {
	v, ok := c.Get("sessionClaims")
	if !ok {
		return nil, false
	}
	claims, ok := v.(*services.SessionClaims)
	return claims, ok
}
