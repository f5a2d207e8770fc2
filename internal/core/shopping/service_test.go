package shopping

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"grocygo-backend/internal/core/inventory"
	"grocygo-backend/internal/core/recipe"
	"grocygo-backend/internal/core/suggest"
	"grocygo-backend/internal/infrastructure/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, store.Store) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "recipes.csv")
	require.NoError(t, os.WriteFile(path, []byte("recipe_title,ingredients\nSoup,Onion|Garlic\n"), 0o644))

	st := store.NewMemoryStore()
	engine := suggest.NewEngine(suggest.NewCorpus(path), suggest.NewNormalizer(suggest.SynonymSubstring), 5, nil)
	invSvc := inventory.NewService(st)
	recSvc := recipe.NewService(st)
	return NewService(st, engine, invSvc, recSvc), st
}

func TestSuggestionsAggregatesMissing(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := st.Add(ctx, "u1", store.CollectionInventory, store.Document{"name": "Egg"})
	require.NoError(t, err)

	_, err = st.Add(ctx, "u1", store.CollectionRecipes, store.Document{
		"name": "Omelette",
		"items": []map[string]interface{}{
			{"name": "Egg"},
			{"name": "Onion"},
			{"name": "Butter"},
		},
	})
	require.NoError(t, err)

	entries, err := svc.Suggestions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "onion", entries[0].Item)
	assert.Equal(t, []string{"Omelette"}, entries[0].NeededFor)
	assert.Equal(t, "butter", entries[1].Item)
}

func TestSuggestionsEmptyUser(t *testing.T) {
	svc, _ := newTestService(t)

	entries, err := svc.Suggestions(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
