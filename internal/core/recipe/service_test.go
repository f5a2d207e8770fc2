package recipe

import (
	"context"
	"testing"

	"grocygo-backend/internal/infrastructure/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestInputs(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	// items 形狀的使用者食譜
	_, err := svc.Add(ctx, "u1", store.Document{
		"name": "Omelette",
		"items": []map[string]interface{}{
			{"name": "Egg"},
			{"name": "Onion"},
		},
	})
	require.NoError(t, err)

	// 收藏自資料集、以 | 分隔字串的食譜
	_, err = svc.Add(ctx, "u1", store.Document{
		"name":        "Dal Tadka",
		"ingredients": "Lentils|Jeera|Haldi",
	})
	require.NoError(t, err)

	// 缺標題與缺食材的食譜不納入
	_, err = svc.Add(ctx, "u1", store.Document{"items": []map[string]interface{}{{"name": "Egg"}}})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", store.Document{"name": "Empty"})
	require.NoError(t, err)

	inputs, err := svc.SuggestInputs(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, "Omelette", inputs[0].Title())
	assert.Equal(t, []string{"Egg", "Onion"}, inputs[0].IngredientList())
	assert.Equal(t, "Dal Tadka", inputs[1].Title())
	assert.Equal(t, []string{"Lentils", "Jeera", "Haldi"}, inputs[1].IngredientList())
}

func TestSuggestInputsEmpty(t *testing.T) {
	svc := NewService(store.NewMemoryStore())

	inputs, err := svc.SuggestInputs(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, inputs)
	assert.Empty(t, inputs)
}
