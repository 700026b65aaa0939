package middleware

import (
	"net/http"
	"strings"

	userRepo "allservices/database/repository/user"
	"allservices/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// JWTAuthMiddleware validates the Bearer token, checks its hash
// against the auth cache (falling back to the user document) and
// loads the caller's ID and role into the request context.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		// Compare the token hash against the issued one so revoked or
		// superseded tokens stop working before they expire.
		computedHash := utils.HashToken(tokenString)
		cachedHash, cacheErr := utils.GetAuthCacheClient().Get(c.Request.Context(), utils.AuthCachePrefix+userID).Result()
		if cacheErr != nil || cachedHash == "" {
			u, err := repo.GetByID(c.Request.Context(), userID)
			if err != nil || u == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
				return
			}
			cachedHash = u.TokenHash
		}
		if cachedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token revoked or superseded"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextRoleKey, role)
		c.Next()
	}
}

// ActorID returns the authenticated caller's user ID from the gin
// context; empty when unauthenticated.
func ActorID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

// ActorRole returns the authenticated caller's role from the gin
// context; empty when unauthenticated.
func ActorRole(c *gin.Context) string {
	return c.GetString(ContextRoleKey)
}
