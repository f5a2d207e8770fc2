package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"grocygo-backend/internal/infrastructure/store"
)

// CategoryStat 單一分類的品項數量
type CategoryStat struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// UsageStat 單日新增品項數量
type UsageStat struct {
	Date  string `json:"date"`
	Added int    `json:"added"`
	Used  int    `json:"used"`
}

// ExpiryStat 單月到期品項數量
type ExpiryStat struct {
	Month         string `json:"month"`
	ExpiringCount int    `json:"expiringCount"`
}

// ShoppingStat 單月採購品項數量
type ShoppingStat struct {
	Month         string `json:"month"`
	ShoppingCount int    `json:"shoppingCount"`
}

// Service 統計分析服務
type Service struct {
	store store.Store
}

// NewService 創建統計分析服務
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// GetAll 列出使用者全部分析紀錄
func (s *Service) GetAll(ctx context.Context, userID string) ([]store.Document, error) {
	return s.store.List(ctx, userID, store.CollectionAnalytics)
}

// CategoryStats 依分類統計庫存品項數量
func (s *Service) CategoryStats(ctx context.Context, userID string) ([]CategoryStat, error) {
	docs, err := s.store.List(ctx, userID, store.CollectionInventory)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, doc := range docs {
		cat := categoryOf(doc)
		if _, ok := counts[cat]; !ok {
			order = append(order, cat)
		}
		counts[cat]++
	}

	stats := make([]CategoryStat, 0, len(order))
	for _, cat := range order {
		stats = append(stats, CategoryStat{Category: cat, Count: counts[cat]})
	}
	return stats, nil
}

// ItemsByCategory 取得指定分類的庫存品項
func (s *Service) ItemsByCategory(ctx context.Context, userID, category string) ([]store.Document, error) {
	docs, err := s.store.List(ctx, userID, store.CollectionInventory)
	if err != nil {
		return nil, err
	}

	matched := make([]store.Document, 0)
	for _, doc := range docs {
		if cat, ok := doc["category"].(string); ok && cat == category {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

// InventoryUsage 依日期統計新增的品項數量
func (s *Service) InventoryUsage(ctx context.Context, userID string) ([]UsageStat, error) {
	docs, err := s.store.List(ctx, userID, store.CollectionInventory)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, doc := range docs {
		t, ok := timeField(doc, "createdAt")
		if !ok {
			continue
		}
		counts[t.UTC().Format("2006-01-02")]++
	}

	stats := make([]UsageStat, 0, len(counts))
	for date, added := range counts {
		stats = append(stats, UsageStat{Date: date, Added: added})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Date < stats[j].Date })
	return stats, nil
}

// ExpiryStats 依月份統計到期的品項數量
func (s *Service) ExpiryStats(ctx context.Context, userID string) ([]ExpiryStat, error) {
	docs, err := s.store.List(ctx, userID, store.CollectionInventory)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, doc := range docs {
		t, ok := timeField(doc, "expiryDate")
		if !ok {
			continue
		}
		counts[monthKey(t)]++
	}

	stats := make([]ExpiryStat, 0, len(counts))
	for month, count := range counts {
		stats = append(stats, ExpiryStat{Month: month, ExpiringCount: count})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month < stats[j].Month })
	return stats, nil
}

// ShoppingTrends 依月份統計新增的品項數量
func (s *Service) ShoppingTrends(ctx context.Context, userID string) ([]ShoppingStat, error) {
	docs, err := s.store.List(ctx, userID, store.CollectionInventory)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, doc := range docs {
		t, ok := timeField(doc, "createdAt")
		if !ok {
			continue
		}
		counts[monthKey(t)]++
	}

	stats := make([]ShoppingStat, 0, len(counts))
	for month, count := range counts {
		stats = append(stats, ShoppingStat{Month: month, ShoppingCount: count})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month < stats[j].Month })
	return stats, nil
}

// categoryOf 取出品項分類，缺漏或非字串時歸入 Uncategorized
func categoryOf(doc store.Document) string {
	raw := doc["category"]
	if list, ok := raw.([]interface{}); ok && len(list) > 0 {
		raw = list[0]
	}
	cat, ok := raw.(string)
	if !ok {
		return "Uncategorized"
	}
	cat = strings.TrimSpace(cat)
	if cat == "" {
		return "Uncategorized"
	}
	return cat
}

// timeField 解析文件中的時間欄位，無法解析時回傳 false
func timeField(doc store.Document, field string) (time.Time, bool) {
	raw, ok := doc[field].(string)
	if !ok || raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.UTC().Year(), int(t.UTC().Month()))
}
