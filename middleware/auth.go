package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kenandcrys/auth-me/response"
	"github.com/kenandcrys/auth-me/services"
)

// tokenFromRequest looks for the session token first in the "token"
// cookie, then in the Authorization bearer header.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// AuthMiddleware rejects requests without a valid session and stores the
// resolved user id in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// RestoreUser resolves the current user when a valid token is present but
// lets anonymous requests through. Handlers read "userID" with CurrentUserID.
func RestoreUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString != "" {
			if userID, err := services.GetUserIDFromToken(tokenString); err == nil {
				c.Set("userID", userID)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id, or 0 when anonymous.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
