package mealplan

import (
	"context"

	"grocygo-backend/internal/infrastructure/store"
)

// Service 餐點規劃服務
type Service struct {
	store store.Store
}

// NewService 創建餐點規劃服務
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// List 列出使用者全部餐點規劃
func (s *Service) List(ctx context.Context, userID string) ([]store.Document, error) {
	return s.store.List(ctx, userID, store.CollectionMealPlans)
}

// Add 新增餐點規劃
func (s *Service) Add(ctx context.Context, userID string, doc store.Document) (store.Document, error) {
	return s.store.Add(ctx, userID, store.CollectionMealPlans, doc)
}

// Update 更新餐點規劃
func (s *Service) Update(ctx context.Context, userID, id string, patch store.Document) (store.Document, error) {
	return s.store.Update(ctx, userID, store.CollectionMealPlans, id, patch)
}

// Delete 刪除餐點規劃
func (s *Service) Delete(ctx context.Context, userID, id string) (store.Document, error) {
	return s.store.Delete(ctx, userID, store.CollectionMealPlans, id)
}
