package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"massagefinder/config"
	"massagefinder/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// devAdminToken grants admin access when Firebase is not configured. Only
// honored outside production, for running the console against the in-memory
// store.
const devAdminToken = "dev-admin"

// TokenVerifier abstracts Firebase ID-token verification so the middleware
// can be exercised without a live Auth backend.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AdminAuthMiddleware guards the admin console routes. It expects a Firebase
// ID token as a bearer credential, verifies it against the Auth service, and
// caches positive verdicts in redis keyed by token hash so repeated admin
// calls within a session skip the Auth round trip. cache may be nil.
func AdminAuthMiddleware(verifier TokenVerifier, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if verifier == nil {
			if !config.IsProduction() && tokenString == devAdminToken {
				c.Set("adminUID", devAdminToken)
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		cacheKey := utils.AuthCachePrefix + hashToken(tokenString)
		if cache != nil {
			if uid, err := cache.Get(c.Request.Context(), cacheKey).Result(); err == nil && uid != "" {
				c.Set("adminUID", uid)
				c.Next()
				return
			}
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		if cache != nil {
			if err := cache.Set(c.Request.Context(), cacheKey, token.UID, utils.AuthCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache admin auth verdict", zap.Error(err))
			}
		}

		c.Set("adminUID", token.UID)
		c.Next()
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
