package notification

import (
	"context"
	"testing"
	"time"

	"grocygo-backend/internal/infrastructure/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedInventory(t *testing.T, st store.Store, userID string, doc store.Document) {
	t.Helper()
	_, err := st.Add(context.Background(), userID, store.CollectionInventory, doc)
	require.NoError(t, err)
}

func TestMarkRead(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, 2)
	ctx := context.Background()

	created, err := svc.Add(ctx, "u1", store.Document{"title": "hello", "read": false})
	require.NoError(t, err)

	updated, err := svc.MarkRead(ctx, "u1", created.ID())
	require.NoError(t, err)
	assert.Equal(t, true, updated["read"])
}

func TestSweepNotifiesExpiringToday(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, 2)
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	seedInventory(t, st, "u1", store.Document{"name": "Milk", "expiryDate": "2026-04-10T18:00:00Z"})
	seedInventory(t, st, "u1", store.Document{"name": "Eggs", "expiryDate": "2026-04-10T01:00:00Z"})
	seedInventory(t, st, "u1", store.Document{"name": "Rice", "expiryDate": "2026-05-01T00:00:00Z"})
	seedInventory(t, st, "u2", store.Document{"name": "Bread"}) // 無到期日

	result, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Users)
	assert.Equal(t, 1, result.Notified)
	assert.Equal(t, 0, result.Failed)

	notifs, err := st.List(ctx, "u1", store.CollectionNotifications)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, "Items expiring today", notifs[0]["title"])
	assert.Equal(t, "expiring", notifs[0]["type"])
	assert.Equal(t, false, notifs[0]["read"])
	assert.Contains(t, notifs[0]["message"], "Milk")
	assert.Contains(t, notifs[0]["message"], "Eggs")
	assert.Equal(t, "2026-04-10T09:00:00Z", notifs[0]["createdAt"])

	// 無到期品項的使用者不收到通知
	other, err := st.List(ctx, "u2", store.CollectionNotifications)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSweepNoUsers(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), 3)

	result, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Users)
	assert.Equal(t, 0, result.Notified)
}

func TestSweepManyUsers(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, 4)
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	users := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, u := range users {
		seedInventory(t, st, u, store.Document{"name": "Milk", "expiryDate": "2026-04-10T00:00:00Z"})
	}

	result, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(users), result.Users)
	assert.Equal(t, len(users), result.Notified)

	for _, u := range users {
		notifs, err := st.List(ctx, u, store.CollectionNotifications)
		require.NoError(t, err)
		assert.Len(t, notifs, 1)
	}
}
