package handlers

import (
	"net/http"

	"grocygo-backend/internal/core/catalog"
	"grocygo-backend/internal/core/inventory"

	"github.com/gin-gonic/gin"
)

// InventoryHandler 庫存處理器
type InventoryHandler struct {
	service *inventory.Service
	catalog *catalog.Catalog
}

// NewInventoryHandler 創建庫存處理器
func NewInventoryHandler(service *inventory.Service, cat *catalog.Catalog) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		catalog: cat,
	}
}

// List 列出庫存
func (h *InventoryHandler) List(c *gin.Context) {
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

// Add 新增庫存項目
func (h *InventoryHandler) Add(c *gin.Context) {
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

// Update 更新庫存項目
func (h *InventoryHandler) Update(c *gin.Context) {
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

// Delete 刪除庫存項目
func (h *InventoryHandler) Delete(c *gin.Context) {
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

// useRequest 扣減請求，同時接受物件與陣列兩種格式
type useRequest struct {
	UsedIngredients []inventory.UsedIngredient `json:"usedIngredients"`
	Ingredients     []inventory.UsedIngredient `json:"ingredients"`
}

// Use 依用量扣減庫存
func (h *InventoryHandler) Use(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	used, ok := bindUsedIngredients(c)
	if !ok {
		return
	}
	if len(used) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "No ingredients provided",
		})
		return
	}

	if err := h.service.UseIngredients(c.Request.Context(), uid, used); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Suggestions 商品目錄自動補全
func (h *InventoryHandler) Suggestions(c *gin.Context) {
	results := h.catalog.Search(c.Query("q"))
	c.JSON(http.StatusOK, results)
}

// bindUsedIngredients 解析扣減清單，兼容直接傳陣列的舊格式
func bindUsedIngredients(c *gin.Context) ([]inventory.UsedIngredient, bool) {
	var direct []inventory.UsedIngredient
	if err := c.ShouldBindBodyWithJSON(&direct); err == nil {
		return direct, true
	}

	var req useRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "No ingredients provided",
		})
		return nil, false
	}
	if len(req.UsedIngredients) > 0 {
		return req.UsedIngredients, true
	}
	return req.Ingredients, true
}
