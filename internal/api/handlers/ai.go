package handlers

import (
	"net/http"

	"grocygo-backend/internal/core/inventory"
	"grocygo-backend/internal/core/suggest"
	"grocygo-backend/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// AIHandler 智慧推薦處理器
type AIHandler struct {
	engine    *suggest.Engine
	inventory *inventory.Service
}

// NewAIHandler 創建智慧推薦處理器
func NewAIHandler(engine *suggest.Engine, inv *inventory.Service) *AIHandler {
	return &AIHandler{
		engine:    engine,
		inventory: inv,
	}
}

// RecipeSuggestions 依食材清單推薦食譜
func (h *AIHandler) RecipeSuggestions(c *gin.Context) {
	var req struct {
		Ingredients []string `json:"ingredients"`
		Course      string   `json:"course"`
		Diet        string   `json:"diet"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	results, err := h.engine.SuggestRecipes(req.Ingredients, req.Course, req.Diet)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// MealPlanSuggestions 依庫存為每個餐別推薦一道食譜
func (h *AIHandler) MealPlanSuggestions(c *gin.Context) {
	var req struct {
		Inventory []string `json:"inventory"`
		Diet      string   `json:"diet"`
		Course    string   `json:"course"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	results, err := h.engine.SuggestMealPlan(req.Inventory, req.Diet, req.Course)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// ShoppingSuggestions 依食譜缺料彙總待採購清單
func (h *AIHandler) ShoppingSuggestions(c *gin.Context) {
	var req struct {
		Inventory []string              `json:"inventory"`
		Recipes   []suggest.RecipeInput `json:"recipes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	entries := h.engine.BuildShoppingList(req.Inventory, req.Recipes)
	if entries == nil {
		entries = []suggest.ShoppingEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// SuggestedRecipes 直接以使用者目前的庫存推薦食譜
func (h *AIHandler) SuggestedRecipes(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	names, err := h.inventory.Names(c.Request.Context(), uid)
	if err != nil {
		abortStoreError(c, err)
		return
	}

	results, err := h.engine.SuggestRecipes(names, "", "")
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
