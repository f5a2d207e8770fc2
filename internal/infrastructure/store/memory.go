package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"grocygo-backend/internal/pkg/common"
)

// MemoryStore 記憶體文件存儲，供測試與單機開發使用
type MemoryStore struct {
	mu sync.RWMutex
	// user -> collection -> id -> 序列化後的文件
	data map[string]map[string]map[string]string
	now  func() time.Time
}

// NewMemoryStore 創建記憶體文件存儲
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]map[string]string),
		now:  time.Now,
	}
}

func (s *MemoryStore) bucket(userID, collection string) map[string]string {
	user, ok := s.data[userID]
	if !ok {
		user = make(map[string]map[string]string)
		s.data[userID] = user
	}
	coll, ok := user[collection]
	if !ok {
		coll = make(map[string]string)
		user[collection] = coll
	}
	return coll
}

// List 回傳集合內全部文件
func (s *MemoryStore) List(ctx context.Context, userID, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0)
	if user, ok := s.data[userID]; ok {
		for _, raw := range user[collection] {
			var doc Document
			if err := common.ParseJSON(raw, &doc); err != nil {
				continue
			}
			docs = append(docs, doc)
		}
	}
	sortDocuments(docs)
	return docs, nil
}

// Get 取得單一文件
func (s *MemoryStore) Get(ctx context.Context, userID, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.data[userID]
	if !ok {
		return nil, ErrNotFound
	}
	raw, ok := user[collection][id]
	if !ok {
		return nil, ErrNotFound
	}

	var doc Document
	if err := common.ParseJSON(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}

// Add 新增文件
func (s *MemoryStore) Add(ctx context.Context, userID, collection string, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(Document, len(doc)+2)
	for k, v := range doc {
		stored[k] = v
	}
	stored["id"] = common.GenerateUUID()
	if _, ok := stored["createdAt"]; !ok {
		stored["createdAt"] = s.now().UTC().Format(time.RFC3339Nano)
	}

	raw, err := common.ToJSON(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	s.bucket(userID, collection)[stored.ID()] = raw
	return stored, nil
}

// Update 合併欄位後寫回
func (s *MemoryStore) Update(ctx context.Context, userID, collection, id string, patch Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.data[userID]
	if !ok {
		return nil, ErrNotFound
	}
	raw, ok := user[collection][id]
	if !ok {
		return nil, ErrNotFound
	}

	var doc Document
	if err := common.ParseJSON(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	for k, v := range patch {
		if k == "id" || k == "createdAt" {
			continue
		}
		doc[k] = v
	}

	raw, err := common.ToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	user[collection][id] = raw
	return doc, nil
}

// Delete 刪除並回傳文件
func (s *MemoryStore) Delete(ctx context.Context, userID, collection, id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.data[userID]
	if !ok {
		return nil, ErrNotFound
	}
	raw, ok := user[collection][id]
	if !ok {
		return nil, ErrNotFound
	}

	var doc Document
	if err := common.ParseJSON(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	delete(user[collection], id)
	return doc, nil
}

// Users 列出所有使用者
func (s *MemoryStore) Users(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]string, 0, len(s.data))
	for userID := range s.data {
		users = append(users, userID)
	}
	sort.Strings(users)
	return users, nil
}

// Close 釋放資源
func (s *MemoryStore) Close() error {
	return nil
}
