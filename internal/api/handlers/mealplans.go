package handlers

import (
	"errors"
	"net/http"

	"grocygo-backend/internal/core/inventory"
	"grocygo-backend/internal/core/mealplan"
	"grocygo-backend/internal/infrastructure/store"

	"github.com/gin-gonic/gin"
)

// MealPlanHandler 餐點規劃處理器
type MealPlanHandler struct {
	service   *mealplan.Service
	inventory *inventory.Service
}

// NewMealPlanHandler 創建餐點規劃處理器
func NewMealPlanHandler(service *mealplan.Service, inv *inventory.Service) *MealPlanHandler {
	return &MealPlanHandler{
		service:   service,
		inventory: inv,
	}
}

// List 列出餐點規劃
func (h *MealPlanHandler) List(c *gin.Context) {
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

// Add 新增餐點規劃
func (h *MealPlanHandler) Add(c *gin.Context) {
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

// Update 更新餐點規劃
func (h *MealPlanHandler) Update(c *gin.Context) {
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

// Delete 刪除餐點規劃
func (h *MealPlanHandler) Delete(c *gin.Context) {
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

// useIngredientsRequest 完成餐點時的食材扣減請求
type useIngredientsRequest struct {
	Ingredients []inventory.UsedIngredient `json:"ingredients"`
	PlanID      string                     `json:"planId"`
}

// UseIngredients 扣減餐點用掉的食材，並視需求刪除該餐點規劃
func (h *MealPlanHandler) UseIngredients(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req useIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Ingredients) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "No ingredients provided",
		})
		return
	}

	if err := h.inventory.UseIngredients(c.Request.Context(), uid, req.Ingredients); err != nil {
		abortStoreError(c, err)
		return
	}

	// 規劃已完成者順帶刪除，不存在時不視為錯誤
	var deletedPlan store.Document
	if req.PlanID != "" {
		doc, err := h.service.Delete(c.Request.Context(), uid, req.PlanID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			abortStoreError(c, err)
			return
		}
		deletedPlan = doc
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"deletedPlan": deletedPlan,
	})
}
