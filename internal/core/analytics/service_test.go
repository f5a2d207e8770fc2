package analytics

import (
	"context"
	"testing"

	"grocygo-backend/internal/infrastructure/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, st store.Store, userID string, doc store.Document) {
	t.Helper()
	_, err := st.Add(context.Background(), userID, store.CollectionInventory, doc)
	require.NoError(t, err)
}

func TestCategoryStats(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	seed(t, st, "u1", store.Document{"name": "Milk", "category": "Dairy"})
	seed(t, st, "u1", store.Document{"name": "Cheese", "category": "Dairy"})
	seed(t, st, "u1", store.Document{"name": "Onion", "category": "Vegetables"})
	seed(t, st, "u1", store.Document{"name": "Mystery"})
	seed(t, st, "u1", store.Document{"name": "Blank", "category": "  "})

	stats, err := svc.CategoryStats(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stats, 3)

	counts := make(map[string]int)
	for _, s := range stats {
		counts[s.Category] = s.Count
	}
	assert.Equal(t, 2, counts["Dairy"])
	assert.Equal(t, 1, counts["Vegetables"])
	assert.Equal(t, 2, counts["Uncategorized"])
}

func TestItemsByCategory(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	seed(t, st, "u1", store.Document{"name": "Milk", "category": "Dairy"})
	seed(t, st, "u1", store.Document{"name": "Onion", "category": "Vegetables"})

	items, err := svc.ItemsByCategory(ctx, "u1", "Dairy")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0]["name"])

	none, err := svc.ItemsByCategory(ctx, "u1", "Frozen")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestInventoryUsage(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	seed(t, st, "u1", store.Document{"name": "a", "createdAt": "2026-03-01T09:00:00Z"})
	seed(t, st, "u1", store.Document{"name": "b", "createdAt": "2026-03-01T21:00:00Z"})
	seed(t, st, "u1", store.Document{"name": "c", "createdAt": "2026-03-05T12:00:00Z"})

	stats, err := svc.InventoryUsage(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "2026-03-01", stats[0].Date)
	assert.Equal(t, 2, stats[0].Added)
	assert.Equal(t, "2026-03-05", stats[1].Date)
	assert.Equal(t, 1, stats[1].Added)
}

func TestExpiryStats(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	seed(t, st, "u1", store.Document{"name": "a", "expiryDate": "2026-03-10T00:00:00Z"})
	seed(t, st, "u1", store.Document{"name": "b", "expiryDate": "2026-03-28T00:00:00Z"})
	seed(t, st, "u1", store.Document{"name": "c", "expiryDate": "2026-04-02T00:00:00Z"})
	seed(t, st, "u1", store.Document{"name": "d"}) // 無到期日，不計入

	stats, err := svc.ExpiryStats(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "2026-03", stats[0].Month)
	assert.Equal(t, 2, stats[0].ExpiringCount)
	assert.Equal(t, "2026-04", stats[1].Month)
	assert.Equal(t, 1, stats[1].ExpiringCount)
}

func TestShoppingTrends(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	seed(t, st, "u1", store.Document{"name": "a", "createdAt": "2026-02-11T00:00:00Z"})
	seed(t, st, "u1", store.Document{"name": "b", "createdAt": "2026-02-20T00:00:00Z"})
	seed(t, st, "u1", store.Document{"name": "c", "createdAt": "2026-03-01T00:00:00Z"})

	stats, err := svc.ShoppingTrends(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "2026-02", stats[0].Month)
	assert.Equal(t, 2, stats[0].ShoppingCount)
	assert.Equal(t, "2026-03", stats[1].Month)
	assert.Equal(t, 1, stats[1].ShoppingCount)
}

func TestStatsIgnoreUnparseableDates(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	seed(t, st, "u1", store.Document{"name": "a", "expiryDate": "not-a-date"})
	seed(t, st, "u1", store.Document{"name": "b", "expiryDate": "2026-03-28"})

	stats, err := svc.ExpiryStats(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "2026-03", stats[0].Month)
	assert.Equal(t, 1, stats[0].ExpiringCount)
}
