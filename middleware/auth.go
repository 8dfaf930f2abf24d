package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
	"github.com/vendora-commerce/vendora-storefront-backend/utils"
)

// AuthMiddleware validates JWT token from cookie or Authorization header
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("auth_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}

			token = parts[1]
		}

		// Validate token
		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		// Set merchant info in context
		c.Set("merchantID", claims.MerchantID)
		c.Set("merchantEmail", claims.Email)
		c.Set("merchantName", claims.Name)

		c.Next()
	}
}

func GetMerchantIDFromContext(c *gin.Context) (string, bool) {
	merchantID, exists := c.Get("merchantID")
	if !exists {
		return "", false
	}
	return merchantID.(string), true
}

func GetMerchantEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("merchantEmail")
	if !exists {
		return "", false
	}
	return email.(string), true
}
