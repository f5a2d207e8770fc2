package handlers

import (
	"net/http"

	"grocygo-backend/internal/core/shopping"

	"github.com/gin-gonic/gin"
)

// ShoppingHandler 購物清單處理器
type ShoppingHandler struct {
	service *shopping.Service
}

// NewShoppingHandler 創建購物清單處理器
func NewShoppingHandler(service *shopping.Service) *ShoppingHandler {
	return &ShoppingHandler{service: service}
}

// List 列出購物清單
func (h *ShoppingHandler) List(c *gin.Context) {
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

// Add 新增購物清單項目
func (h *ShoppingHandler) Add(c *gin.Context) {
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

// Update 更新購物清單項目
func (h *ShoppingHandler) Update(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	updated, err := h.service.Update(c.Request.Context(), uid, c.Param("id"), doc)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete 刪除購物清單項目
func (h *ShoppingHandler) Delete(c *gin.Context) {
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

// Suggestions 根據使用者食譜與庫存推算待採購清單
func (h *ShoppingHandler) Suggestions(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	entries, err := h.service.Suggestions(c.Request.Context(), uid)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
