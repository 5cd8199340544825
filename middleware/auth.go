package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"mediconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Context keys set by the auth middleware.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// JWTAuthMiddleware validates the bearer token and stores the caller's
// identity on the request context. When the auth cache is available the token
// hash is also checked against it, so revoked tokens stop working before they
// expire; an unavailable cache degrades to signature-only validation.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		if authCache := utils.AuthCacheClient; authCache != nil {
			cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
			ctx := context.Background()
			if _, err := authCache.Get(ctx, cacheKey).Result(); err == redis.Nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Session expired, please sign in again",
				})
				return
			} else if err != nil {
				log.Printf("WARNING: auth cache lookup failed: %v. Falling back to signature validation.", err)
			} else {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			}
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// RequireRole rejects callers whose token role is not in the allowed set.
// Must run after JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to perform this action",
		})
	}
}
