package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// AbortWithError 依錯誤類型寫入統一格式的錯誤響應
func AbortWithError(c *gin.Context, err error) {
	var ce *CustomError
	if errors.As(err, &ce) {
		c.AbortWithStatusJSON(ce.Status, gin.H{
			"error": ce.Message,
			"code":  ce.Code,
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
		"code":  ErrCodeInternalError,
	})
}
