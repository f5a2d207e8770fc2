package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAdd(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.Add(ctx, "u1", CollectionInventory, Document{"name": "Milk", "quantity": 2.0})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID())
	assert.NotEmpty(t, created["createdAt"])
	assert.Equal(t, "Milk", created["name"])

	got, err := s.Get(ctx, "u1", CollectionInventory, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Milk", got["name"])
}

func TestMemoryStoreListSortedByCreatedAt(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	times := []time.Time{base.Add(2 * time.Hour), base, base.Add(time.Hour)}
	names := []string{"third", "first", "second"}
	for i := range times {
		ts := times[i]
		s.now = func() time.Time { return ts }
		_, err := s.Add(ctx, "u1", CollectionInventory, Document{"name": names[i]})
		require.NoError(t, err)
	}

	docs, err := s.List(ctx, "u1", CollectionInventory)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "first", docs[0]["name"])
	assert.Equal(t, "second", docs[1]["name"])
	assert.Equal(t, "third", docs[2]["name"])
}

func TestMemoryStoreListEmpty(t *testing.T) {
	s := NewMemoryStore()

	docs, err := s.List(context.Background(), "nobody", CollectionRecipes)
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestMemoryStoreUpdateMergesFields(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.Add(ctx, "u1", CollectionInventory, Document{"name": "Milk", "quantity": 2.0})
	require.NoError(t, err)

	updated, err := s.Update(ctx, "u1", CollectionInventory, created.ID(), Document{"quantity": 1.5})
	require.NoError(t, err)

	assert.Equal(t, 1.5, updated["quantity"])
	assert.Equal(t, "Milk", updated["name"])
}

func TestMemoryStoreUpdateProtectsIDAndCreatedAt(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.Add(ctx, "u1", CollectionInventory, Document{"name": "Milk"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, "u1", CollectionInventory, created.ID(), Document{
		"id":        "hacked",
		"createdAt": "2000-01-01T00:00:00Z",
		"name":      "Cream",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID(), updated.ID())
	assert.Equal(t, created["createdAt"], updated["createdAt"])
	assert.Equal(t, "Cream", updated["name"])
}

func TestMemoryStoreUpdateNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Update(context.Background(), "u1", CollectionInventory, "nope", Document{"a": 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteReturnsDocument(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.Add(ctx, "u1", CollectionInventory, Document{"name": "Milk"})
	require.NoError(t, err)

	deleted, err := s.Delete(ctx, "u1", CollectionInventory, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Milk", deleted["name"])

	_, err = s.Get(ctx, "u1", CollectionInventory, created.ID())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Delete(ctx, "u1", CollectionInventory, created.ID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreIsolatesUsersAndCollections(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Add(ctx, "u1", CollectionInventory, Document{"name": "Milk"})
	require.NoError(t, err)
	_, err = s.Add(ctx, "u2", CollectionInventory, Document{"name": "Eggs"})
	require.NoError(t, err)
	_, err = s.Add(ctx, "u1", CollectionRecipes, Document{"name": "Omelette"})
	require.NoError(t, err)

	inv1, err := s.List(ctx, "u1", CollectionInventory)
	require.NoError(t, err)
	require.Len(t, inv1, 1)
	assert.Equal(t, "Milk", inv1[0]["name"])

	inv2, err := s.List(ctx, "u2", CollectionInventory)
	require.NoError(t, err)
	require.Len(t, inv2, 1)
	assert.Equal(t, "Eggs", inv2[0]["name"])
}

func TestMemoryStoreUsers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Add(ctx, "charlie", CollectionInventory, Document{"name": "a"})
	require.NoError(t, err)
	_, err = s.Add(ctx, "alice", CollectionInventory, Document{"name": "b"})
	require.NoError(t, err)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "charlie"}, users)
}

func TestDocumentDecode(t *testing.T) {
	doc := Document{"name": "Milk", "quantity": 2.5}

	var item struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
	}
	require.NoError(t, doc.Decode(&item))
	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, 2.5, item.Quantity)
}
