package store

import (
	"context"
	"fmt"
	"time"

	"grocygo-backend/internal/infrastructure/config"
	"grocygo-backend/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

const usersKey = "users"

// RedisStore Redis 文件存儲，每個集合對應一個 hash
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 創建 Redis 文件存儲
func NewRedisStore(cfg *config.StoreConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: cfg.DialTimeout,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// collectionKey 生成集合鍵，沿用 Firestore 的 user/{uid}/{collection} 路徑
func collectionKey(userID, collection string) string {
	return fmt.Sprintf("user:%s:%s", userID, collection)
}

// List 回傳集合內全部文件
func (s *RedisStore) List(ctx context.Context, userID, collection string) ([]Document, error) {
	values, err := s.client.HVals(ctx, collectionKey(userID, collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]Document, 0, len(values))
	for _, raw := range values {
		var doc Document
		if err := common.ParseJSON(raw, &doc); err != nil {
			// 單筆損壞不應中斷整個列表
			continue
		}
		docs = append(docs, doc)
	}
	sortDocuments(docs)
	return docs, nil
}

// Get 取得單一文件
func (s *RedisStore) Get(ctx context.Context, userID, collection, id string) (Document, error) {
	raw, err := s.client.HGet(ctx, collectionKey(userID, collection), id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc Document
	if err := common.ParseJSON(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}

// Add 新增文件
func (s *RedisStore) Add(ctx context.Context, userID, collection string, doc Document) (Document, error) {
	stored := make(Document, len(doc)+2)
	for k, v := range doc {
		stored[k] = v
	}
	stored["id"] = common.GenerateUUID()
	if _, ok := stored["createdAt"]; !ok {
		stored["createdAt"] = time.Now().UTC().Format(time.RFC3339Nano)
	}

	raw, err := common.ToJSON(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, collectionKey(userID, collection), stored.ID(), raw)
	pipe.SAdd(ctx, usersKey, userID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to add document: %w", err)
	}
	return stored, nil
}

// Update 合併欄位後寫回
func (s *RedisStore) Update(ctx context.Context, userID, collection, id string, patch Document) (Document, error) {
	doc, err := s.Get(ctx, userID, collection, id)
	if err != nil {
		return nil, err
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
	if err := s.client.HSet(ctx, collectionKey(userID, collection), id, raw).Err(); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}

// Delete 刪除並回傳文件
func (s *RedisStore) Delete(ctx context.Context, userID, collection, id string) (Document, error) {
	doc, err := s.Get(ctx, userID, collection, id)
	if err != nil {
		return nil, err
	}
	if err := s.client.HDel(ctx, collectionKey(userID, collection), id).Err(); err != nil {
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}
	return doc, nil
}

// Users 列出所有使用者
func (s *RedisStore) Users(ctx context.Context) ([]string, error) {
	users, err := s.client.SMembers(ctx, usersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Close 關閉連接
func (s *RedisStore) Close() error {
	return s.client.Close()
}
