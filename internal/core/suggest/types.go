package suggest

import (
	"encoding/json"
	"strings"

	"grocygo-backend/internal/pkg/common"
)

// Suggestion 單筆食譜建議，欄位沿用既有前端約定
type Suggestion struct {
	RecipeTitle          string   `json:"recipe_title"`
	Ingredients          string   `json:"ingredients"`
	URL                  string   `json:"url"`
	RecipeImage          string   `json:"recipe_image"`
	PrepTime             string   `json:"prep_time"`
	Course               string   `json:"course"`
	Diet                 string   `json:"diet"`
	MatchedIngredients   []string `json:"matched_ingredients"`
	MissingIngredients   []string `json:"missing_ingredients"`
	Description          string   `json:"description"`
	Instructions         string   `json:"instructions"`
	IngredientsAvailable int      `json:"ingredients_available"`
	IngredientsTotal     int      `json:"ingredients_total"`
	ID                   string   `json:"id"`
}

// MatchResult 單一食譜與庫存的比對結果，每次請求重新計算、不快取
type MatchResult struct {
	Matched       []string `json:"matched_ingredients"`
	Missing       []string `json:"missing_ingredients"`
	CoverageRatio float64  `json:"coverage_ratio"`
}

// ShoppingEntry 購物建議項目：一項缺少的食材與需要它的食譜
type ShoppingEntry struct {
	Item      string   `json:"item"`
	NeededFor []string `json:"needed_for"`
}

// IngredientsField 食譜食材欄位，接受以 | 分隔的字串或字串陣列
type IngredientsField []string

// UnmarshalJSON 實現兩種輸入形狀的解析
func (f *IngredientsField) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*f = SplitIngredients(asString)
		return nil
	}
	var asList []string
	if err := json.Unmarshal(data, &asList); err != nil {
		return err
	}
	*f = asList
	return nil
}

// RecipeInput 購物建議輸入的食譜。
// 三種歷史形狀（| 分隔字串、字串陣列、items 物件陣列）都在邊界收斂成一份食材名稱列表。
type RecipeInput struct {
	RecipeTitle        string              `json:"recipe_title"`
	Name               string              `json:"name"` // 使用者食譜以 name 為標題
	Ingredients        IngredientsField    `json:"ingredients"`
	Items              []common.RecipeItem `json:"items"`
	MissingIngredients []string            `json:"missing_ingredients"`
}

// Title 回傳可用的標題
func (r RecipeInput) Title() string {
	if r.RecipeTitle != "" {
		return r.RecipeTitle
	}
	return r.Name
}

// IngredientList 各種輸入形狀統一轉為食材名稱列表
func (r RecipeInput) IngredientList() []string {
	if len(r.Ingredients) > 0 {
		return r.Ingredients
	}
	names := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		if strings.TrimSpace(item.Name) != "" {
			names = append(names, item.Name)
		}
	}
	return names
}

// SplitIngredients 拆開 | 分隔字串，空白項目不回傳
func SplitIngredients(raw string) []string {
	parts := make([]string, 0)
	for _, part := range strings.Split(raw, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
