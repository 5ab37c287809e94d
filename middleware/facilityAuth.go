package middleware

import (
	"context"
	"net/http"
	"strings"

	facilityRepo "carelink/database/repository/facility"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/go-redis/redis/v8"
)

// JWTAuthFacilityMiddleware validates the JWT token for facilities with Redis caching.
func JWTAuthFacilityMiddleware(repo facilityRepo.FacilityRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Extract the facility ID from the token.
		facilityID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || facilityID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Compute the token hash.
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		// Check the authorization cache.
		authCache := utils.GetAuthCacheClient()
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached == "1" {
			// Refresh TTL (sliding expiration) and proceed.
			if err := authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err(); err != nil {
				logger.Error("Failed to refresh auth cache TTL", zap.Error(err))
			}
			c.Set("facilityID", facilityID)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			logger.Error("Error checking auth cache", zap.Error(err))
		}

		// Cache miss: query the facility repository.
		proj := bson.M{"id": 1, "security": 1}
		facility, err := repo.GetByIDWithProjection(facilityID, proj)
		if err != nil || facility == nil {
			logger.Error("Facility not found when validating token", zap.String("facilityID", facilityID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Facility not found"})
			return
		}

		// Validate the token hash.
		if computedHash != facility.Security.TokenHash {
			logger.Error("Token hash mismatch", zap.String("facilityID", facilityID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		// Successful validation: cache the token hash.
		if err := authCache.Set(ctx, cacheKey, "1", utils.AuthCacheTTL).Err(); err != nil {
			logger.Error("Failed to set auth cache", zap.Error(err))
		}

		// Set the facility ID in context and proceed.
		c.Set("facilityID", facilityID)
		c.Next()
	}
}
