package handlers

import (
	"net/http"

	"grocygo-backend/internal/core/analytics"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler 統計分析處理器
type AnalyticsHandler struct {
	service *analytics.Service
}

// NewAnalyticsHandler 創建統計分析處理器
func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetAll 列出分析紀錄
func (h *AnalyticsHandler) GetAll(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	docs, err := h.service.GetAll(c.Request.Context(), uid)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// CategoryStats 依分類統計庫存
func (h *AnalyticsHandler) CategoryStats(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	stats, err := h.service.CategoryStats(c.Request.Context(), uid)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ItemsByCategory 取得指定分類的庫存品項
func (h *AnalyticsHandler) ItemsByCategory(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	items, err := h.service.ItemsByCategory(c.Request.Context(), uid, c.Param("category"))
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// InventoryUsage 依日期統計新增品項
func (h *AnalyticsHandler) InventoryUsage(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	stats, err := h.service.InventoryUsage(c.Request.Context(), uid)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExpiryStats 依月份統計到期品項
func (h *AnalyticsHandler) ExpiryStats(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	stats, err := h.service.ExpiryStats(c.Request.Context(), uid)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ShoppingTrends 依月份統計採購品項
func (h *AnalyticsHandler) ShoppingTrends(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	stats, err := h.service.ShoppingTrends(c.Request.Context(), uid)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
