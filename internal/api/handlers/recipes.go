package handlers

import (
	"net/http"

	"grocygo-backend/internal/core/recipe"

	"github.com/gin-gonic/gin"
)

// RecipeHandler 食譜處理器
type RecipeHandler struct {
	service *recipe.Service
}

// NewRecipeHandler 創建食譜處理器
func NewRecipeHandler(service *recipe.Service) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// List 列出食譜
func (h *RecipeHandler) List(c *gin.Context) {
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

// Add 新增食譜
func (h *RecipeHandler) Add(c *gin.Context) {
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

// Update 更新食譜
func (h *RecipeHandler) Update(c *gin.Context) {
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

// Delete 刪除食譜
func (h *RecipeHandler) Delete(c *gin.Context) {
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
