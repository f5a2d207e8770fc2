package handlers

import (
	"errors"
	"net/http"

	"grocygo-backend/internal/api/middleware"
	"grocygo-backend/internal/infrastructure/store"
	"grocygo-backend/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// userID 從 context 取出已驗證的使用者 ID
func userID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ContextUserID)
	if id == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return "", false
	}
	return id, true
}

// abortStoreError 將存取層錯誤轉為統一的錯誤響應
func abortStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
		return
	}
	common.AbortWithError(c, err)
}

// bindDocument 解析請求體為文件，拒絕空對象以外的格式錯誤
func bindDocument(c *gin.Context) (store.Document, bool) {
	var doc store.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return nil, false
	}
	return doc, true
}
