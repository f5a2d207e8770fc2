package inventory

import (
	"context"
	"math"
	"strings"

	"grocygo-backend/internal/infrastructure/store"
	"grocygo-backend/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 庫存服務
type Service struct {
	store store.Store
}

// NewService 創建庫存服務
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// List 列出使用者全部庫存
func (s *Service) List(ctx context.Context, userID string) ([]store.Document, error) {
	return s.store.List(ctx, userID, store.CollectionInventory)
}

// Add 新增庫存項目
func (s *Service) Add(ctx context.Context, userID string, doc store.Document) (store.Document, error) {
	return s.store.Add(ctx, userID, store.CollectionInventory, doc)
}

// Update 更新庫存項目
func (s *Service) Update(ctx context.Context, userID, id string, patch store.Document) (store.Document, error) {
	return s.store.Update(ctx, userID, store.CollectionInventory, id, patch)
}

// Delete 刪除庫存項目
func (s *Service) Delete(ctx context.Context, userID, id string) (store.Document, error) {
	return s.store.Delete(ctx, userID, store.CollectionInventory, id)
}

// Names 取出庫存項目名稱列表，供推薦引擎使用
func (s *Service) Names(ctx context.Context, userID string) ([]string, error) {
	docs, err := s.store.List(ctx, userID, store.CollectionInventory)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		if name, ok := doc["name"].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// UsedIngredient 一筆被消耗的食材
type UsedIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
}

// UseIngredients 依名稱（大小寫與頭尾空白不敏感）扣減庫存數量。
// 數量下限為 0，保留兩位小數；找不到對應項目的食材直接略過。
func (s *Service) UseIngredients(ctx context.Context, userID string, used []UsedIngredient) error {
	docs, err := s.store.List(ctx, userID, store.CollectionInventory)
	if err != nil {
		return err
	}

	for _, u := range used {
		usedName := strings.ToLower(strings.TrimSpace(u.Name))
		if usedName == "" {
			continue
		}

		var matched store.Document
		for _, doc := range docs {
			name, _ := doc["name"].(string)
			if strings.ToLower(strings.TrimSpace(name)) == usedName {
				matched = doc
			}
		}
		if matched == nil {
			continue
		}

		var item common.InventoryItem
		if err := matched.Decode(&item); err != nil {
			common.LogWarn("庫存項目解析失敗，略過扣減",
				zap.String("id", matched.ID()),
				zap.Error(err),
			)
			continue
		}

		newQty := item.Quantity - u.Quantity
		if newQty < 0 {
			newQty = 0
		}
		newQty = math.Round(newQty*100) / 100

		if _, err := s.store.Update(ctx, userID, store.CollectionInventory, matched.ID(), store.Document{"quantity": newQty}); err != nil {
			return err
		}
	}
	return nil
}
