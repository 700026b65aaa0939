package middleware

import (
	"net/http"

	"allservices/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route on the caller's role claim. It must run
// after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ActorRole(c) != role {
			message := "Only providers can access this resource"
			if role == models.RoleClient {
				message = "Only clients can access this resource"
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": message})
			return
		}
		c.Next()
	}
}
