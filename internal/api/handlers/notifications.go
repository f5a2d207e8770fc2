package handlers

import (
	"net/http"

	"grocygo-backend/internal/core/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler 通知處理器
type NotificationHandler struct {
	service *notification.Service
}

// NewNotificationHandler 創建通知處理器
func NewNotificationHandler(service *notification.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List 列出通知
func (h *NotificationHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	docs, err := h.service.List(c.Request.Context(), uid)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Add 新增通知
func (h *NotificationHandler) Add(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	created, err := h.service.Add(c.Request.Context(), uid, doc)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// MarkRead 將通知標記為已讀
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	updated, err := h.service.MarkRead(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete 刪除通知
func (h *NotificationHandler) Delete(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
