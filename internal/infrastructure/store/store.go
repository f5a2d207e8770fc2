package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"grocygo-backend/internal/pkg/common"
)

// 集合名稱沿用既有前端約定，不可改動
const (
	CollectionInventory     = "inventory"
	CollectionRecipes       = "recipes"
	CollectionMealPlans     = "mealPlans"
	CollectionShoppingLists = "shoppingLists"
	CollectionNotifications = "notifications"
	CollectionAnalytics     = "analytics"
)

// ErrNotFound 文件不存在
var ErrNotFound = fmt.Errorf("document not found")

// Document 單一 JSON 文件
type Document map[string]interface{}

// ID 取得文件 ID
func (d Document) ID() string {
	if id, ok := d["id"].(string); ok {
		return id
	}
	return ""
}

// Decode 將文件解碼到結構體
func (d Document) Decode(v interface{}) error {
	raw, err := common.ToJSON(d)
	if err != nil {
		return err
	}
	return common.ParseJSON(raw, v)
}

// FromStruct 將結構體編碼為文件
func FromStruct(v interface{}) (Document, error) {
	raw, err := common.ToJSON(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := common.ParseJSON(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Store 以使用者為根的文件存儲，每份文件屬於 user/{uid}/{collection}/{id}
type Store interface {
	// List 回傳集合內全部文件，依 createdAt 與 id 排序
	List(ctx context.Context, userID, collection string) ([]Document, error)
	// Get 取得單一文件，不存在時回傳 ErrNotFound
	Get(ctx context.Context, userID, collection, id string) (Document, error)
	// Add 新增文件，寫入生成的 id 與 createdAt 後回傳
	Add(ctx context.Context, userID, collection string, doc Document) (Document, error)
	// Update 合併欄位後回傳更新結果，不存在時回傳 ErrNotFound
	Update(ctx context.Context, userID, collection, id string, patch Document) (Document, error)
	// Delete 刪除並回傳文件，不存在時回傳 ErrNotFound
	Delete(ctx context.Context, userID, collection, id string) (Document, error)
	// Users 列出所有曾寫入文件的使用者
	Users(ctx context.Context) ([]string, error)
	// Close 釋放底層資源
	Close() error
}

// sortDocuments 依 createdAt 與 id 排序，保證列表輸出確定性
func sortDocuments(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		ti, tj := docCreatedAt(docs[i]), docCreatedAt(docs[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return docs[i].ID() < docs[j].ID()
	})
}

func docCreatedAt(d Document) time.Time {
	raw, ok := d["createdAt"].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
