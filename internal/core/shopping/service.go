package shopping

import (
	"context"

	"grocygo-backend/internal/core/inventory"
	"grocygo-backend/internal/core/recipe"
	"grocygo-backend/internal/core/suggest"
	"grocygo-backend/internal/infrastructure/store"
)

// Service 購物清單服務
type Service struct {
	store     store.Store
	engine    *suggest.Engine
	inventory *inventory.Service
	recipes   *recipe.Service
}

// NewService 創建購物清單服務
func NewService(st store.Store, engine *suggest.Engine, inv *inventory.Service, rec *recipe.Service) *Service {
	return &Service{
		store:     st,
		engine:    engine,
		inventory: inv,
		recipes:   rec,
	}
}

// List 列出使用者全部購物清單項目
func (s *Service) List(ctx context.Context, userID string) ([]store.Document, error) {
	return s.store.List(ctx, userID, store.CollectionShoppingLists)
}

// Add 新增購物清單項目
func (s *Service) Add(ctx context.Context, userID string, doc store.Document) (store.Document, error) {
	return s.store.Add(ctx, userID, store.CollectionShoppingLists, doc)
}

// Update 更新購物清單項目
func (s *Service) Update(ctx context.Context, userID, id string, patch store.Document) (store.Document, error) {
	return s.store.Update(ctx, userID, store.CollectionShoppingLists, id, patch)
}

// Delete 刪除購物清單項目
func (s *Service) Delete(ctx context.Context, userID, id string) (store.Document, error) {
	return s.store.Delete(ctx, userID, store.CollectionShoppingLists, id)
}

// Suggestions 根據使用者的食譜與庫存推算待採購清單
func (s *Service) Suggestions(ctx context.Context, userID string) ([]suggest.ShoppingEntry, error) {
	inventoryNames, err := s.inventory.Names(ctx, userID)
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipes.SuggestInputs(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := s.engine.BuildShoppingList(inventoryNames, recipes)
	if entries == nil {
		entries = []suggest.ShoppingEntry{}
	}
	return entries, nil
}
