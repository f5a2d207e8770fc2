package middleware

import (
	"net/http"
	"strings"

	"grocygo-backend/internal/infrastructure/config"
	"grocygo-backend/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ContextUserID 存放於 gin context 的使用者 ID 鍵
const ContextUserID = "userID"

// checkAPIKey 驗證 x-api-key 標頭，失敗時中止請求
func checkAPIKey(c *gin.Context, cfg *config.AuthConfig) bool {
	key := c.GetHeader("x-api-key")
	if key == "" || key != cfg.APIKey {
		common.LogWarn("Invalid API key",
			zap.String("ip", c.ClientIP()),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Forbidden: Invalid API Key",
		})
		return false
	}
	return true
}

// Auth 驗證 API Key 與 Bearer Token，將使用者 ID 寫入 context
func Auth(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checkAPIKey(c, cfg) {
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No token provided",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := parseUserToken(tokenString, cfg.JWTSecret)
		if err != nil {
			common.LogWarn("Token verification failed",
				zap.String("ip", c.ClientIP()),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid or expired token",
				"details": err.Error(),
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// parseUserToken 驗證 HS256 簽章並取出使用者 ID
func parseUserToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	if uid, ok := claims["uid"].(string); ok && uid != "" {
		return uid, nil
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub, nil
	}
	return "", jwt.ErrTokenRequiredClaimMissing
}
