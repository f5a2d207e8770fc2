package common

import (
	"time"
)

// InventoryItem 庫存食材
type InventoryItem struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit,omitempty"`
	Category   string     `json:"category,omitempty"`
	Location   string     `json:"location,omitempty"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt,omitempty"`
}

// RecipeItem 使用者食譜中的單一食材
type RecipeItem struct {
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity,omitempty"`
	Unit          string  `json:"unit,omitempty"`
	FromInventory bool    `json:"fromInventory,omitempty"`
}

// UserRecipe 使用者自建或收藏的食譜
type UserRecipe struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name"`
	Items        []RecipeItem `json:"items,omitempty"`
	Ingredients  string       `json:"ingredients,omitempty"` // 以 | 分隔的原始字串（收藏自資料集時）
	Course       string       `json:"course,omitempty"`
	Diet         string       `json:"diet,omitempty"`
	PrepTime     string       `json:"prepTime,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
	CreatedAt    time.Time    `json:"createdAt,omitempty"`
}

// Notification 使用者通知
type Notification struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	Type      string    `json:"type,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
