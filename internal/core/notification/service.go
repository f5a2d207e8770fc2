package notification

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"grocygo-backend/internal/infrastructure/store"
	"grocygo-backend/internal/pkg/common"

	"go.uber.org/zap"
)

// SweepResult 到期掃描結果
type SweepResult struct {
	Users    int `json:"users"`
	Notified int `json:"notified"`
	Failed   int `json:"failed"`
}

// Service 通知服務
type Service struct {
	store   store.Store
	workers int
	now     func() time.Time
}

// NewService 創建通知服務
func NewService(st store.Store, workers int) *Service {
	if workers <= 0 {
		workers = 1
	}
	return &Service{
		store:   st,
		workers: workers,
		now:     time.Now,
	}
}

// List 列出使用者全部通知
func (s *Service) List(ctx context.Context, userID string) ([]store.Document, error) {
	return s.store.List(ctx, userID, store.CollectionNotifications)
}

// Add 新增通知
func (s *Service) Add(ctx context.Context, userID string, doc store.Document) (store.Document, error) {
	return s.store.Add(ctx, userID, store.CollectionNotifications, doc)
}

// Delete 刪除通知
func (s *Service) Delete(ctx context.Context, userID, id string) (store.Document, error) {
	return s.store.Delete(ctx, userID, store.CollectionNotifications, id)
}

// MarkRead 將通知標記為已讀
func (s *Service) MarkRead(ctx context.Context, userID, id string) (store.Document, error) {
	return s.store.Update(ctx, userID, store.CollectionNotifications, id, store.Document{"read": true})
}

// Sweep 掃描所有使用者的庫存，為當日到期的品項建立通知
func (s *Service) Sweep(ctx context.Context) (*SweepResult, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}

	var notified, failed int64
	jobs := make(chan string)
	var wg sync.WaitGroup

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for userID := range jobs {
				added, err := s.sweepUser(ctx, userID)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					common.LogError("Expiry sweep failed for user", zap.String("user_id", userID), zap.Error(err))
					continue
				}
				if added {
					atomic.AddInt64(&notified, 1)
				}
			}
		}()
	}

	for _, userID := range users {
		select {
		case jobs <- userID:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	result := &SweepResult{
		Users:    len(users),
		Notified: int(atomic.LoadInt64(&notified)),
		Failed:   int(atomic.LoadInt64(&failed)),
	}
	common.LogInfo("Expiry sweep completed",
		zap.Int("users", result.Users),
		zap.Int("notified", result.Notified),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// sweepUser 檢查單一使用者的庫存，有當日到期品項時建立一則通知
func (s *Service) sweepUser(ctx context.Context, userID string) (bool, error) {
	docs, err := s.store.List(ctx, userID, store.CollectionInventory)
	if err != nil {
		return false, err
	}

	today := s.now()
	var expiring []string
	for _, doc := range docs {
		var item common.InventoryItem
		if err := doc.Decode(&item); err != nil {
			common.LogWarn("Skipping undecodable inventory item", zap.String("user_id", userID), zap.Error(err))
			continue
		}
		if item.ExpiryDate == nil {
			continue
		}
		if sameDay(*item.ExpiryDate, today) {
			expiring = append(expiring, item.Name)
		}
	}
	if len(expiring) == 0 {
		return false, nil
	}

	notif, err := store.FromStruct(common.Notification{
		Title:     "Items expiring today",
		Message:   "Expiring: " + strings.Join(expiring, ", "),
		Type:      "expiring",
		Read:      false,
		CreatedAt: today.UTC(),
	})
	if err != nil {
		return false, err
	}
	if _, err := s.store.Add(ctx, userID, store.CollectionNotifications, notif); err != nil {
		return false, err
	}
	return true, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
