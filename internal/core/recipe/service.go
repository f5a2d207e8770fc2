package recipe

import (
	"context"

	"grocygo-backend/internal/core/suggest"
	"grocygo-backend/internal/infrastructure/store"
	"grocygo-backend/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 使用者食譜服務
type Service struct {
	store store.Store
}

// NewService 創建使用者食譜服務
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// List 列出使用者全部食譜
func (s *Service) List(ctx context.Context, userID string) ([]store.Document, error) {
	return s.store.List(ctx, userID, store.CollectionRecipes)
}

// Add 新增食譜
func (s *Service) Add(ctx context.Context, userID string, doc store.Document) (store.Document, error) {
	return s.store.Add(ctx, userID, store.CollectionRecipes, doc)
}

// Update 更新食譜
func (s *Service) Update(ctx context.Context, userID, id string, patch store.Document) (store.Document, error) {
	return s.store.Update(ctx, userID, store.CollectionRecipes, id, patch)
}

// Delete 刪除食譜
func (s *Service) Delete(ctx context.Context, userID, id string) (store.Document, error) {
	return s.store.Delete(ctx, userID, store.CollectionRecipes, id)
}

// SuggestInputs 將使用者食譜轉為推薦引擎輸入。
// 缺標題或沒有任何食材的食譜不納入，單筆壞資料不中斷整體。
func (s *Service) SuggestInputs(ctx context.Context, userID string) ([]suggest.RecipeInput, error) {
	docs, err := s.store.List(ctx, userID, store.CollectionRecipes)
	if err != nil {
		return nil, err
	}

	inputs := make([]suggest.RecipeInput, 0, len(docs))
	for _, doc := range docs {
		var rec common.UserRecipe
		if err := doc.Decode(&rec); err != nil {
			common.LogWarn("使用者食譜解析失敗，略過",
				zap.String("id", doc.ID()),
				zap.Error(err),
			)
			continue
		}

		input := suggest.RecipeInput{
			Name:  rec.Name,
			Items: rec.Items,
		}
		// 收藏自資料集的食譜帶 | 分隔字串而非 items
		if len(input.Items) == 0 && rec.Ingredients != "" {
			input.Ingredients = suggest.SplitIngredients(rec.Ingredients)
		}
		if input.Title() == "" || len(input.IngredientList()) == 0 {
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
