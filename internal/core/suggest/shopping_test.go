package suggest

import (
	"encoding/json"
	"testing"

	"grocygo-backend/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShoppingListAggregates(t *testing.T) {
	e := newTestEngine(t)

	recipes := []RecipeInput{
		{RecipeTitle: "Soup", MissingIngredients: []string{"Garlic", "Butter"}},
		{RecipeTitle: "Curry", MissingIngredients: []string{"garlic", "Haldi"}},
	}

	entries := e.BuildShoppingList(nil, recipes)
	require.Len(t, entries, 3)

	// 兩筆食譜共用的缺料彙整為一個項目
	assert.Equal(t, "garlic", entries[0].Item)
	assert.Equal(t, []string{"Soup", "Curry"}, entries[0].NeededFor)
	assert.Equal(t, "butter", entries[1].Item)
	assert.Equal(t, []string{"Soup"}, entries[1].NeededFor)
	assert.Equal(t, "turmeric", entries[2].Item)
	assert.Equal(t, []string{"Curry"}, entries[2].NeededFor)
}

func TestBuildShoppingListComputesMissing(t *testing.T) {
	e := newTestEngine(t)

	recipes := []RecipeInput{
		{Name: "Omelette", Items: []common.RecipeItem{{Name: "Egg"}, {Name: "Onion"}, {Name: "Butter"}}},
	}

	entries := e.BuildShoppingList([]string{"Egg"}, recipes)
	require.Len(t, entries, 2)
	assert.Equal(t, "onion", entries[0].Item)
	assert.Equal(t, "butter", entries[1].Item)
}

func TestBuildShoppingListSkipsInventoryItems(t *testing.T) {
	e := newTestEngine(t)

	recipes := []RecipeInput{
		{RecipeTitle: "Soup", MissingIngredients: []string{"Garlic", "Onion"}},
	}

	// 已在庫存內的缺料不列入購物清單
	entries := e.BuildShoppingList([]string{"Onion"}, recipes)
	require.Len(t, entries, 1)
	assert.Equal(t, "garlic", entries[0].Item)
}

func TestBuildShoppingListSkipsInvalidRecipes(t *testing.T) {
	e := newTestEngine(t)

	recipes := []RecipeInput{
		{RecipeTitle: "", MissingIngredients: []string{"Garlic"}},
		{RecipeTitle: "Empty"},
		{RecipeTitle: "Blanks", MissingIngredients: []string{"  ", "!!!"}},
	}

	entries := e.BuildShoppingList(nil, recipes)
	assert.Empty(t, entries)
}

func TestBuildShoppingListDedupesTitles(t *testing.T) {
	e := newTestEngine(t)

	recipes := []RecipeInput{
		{RecipeTitle: "Soup", MissingIngredients: []string{"Garlic", "garlic"}},
	}

	entries := e.BuildShoppingList(nil, recipes)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Soup"}, entries[0].NeededFor)
}

func TestRecipeInputIngredientsShapes(t *testing.T) {
	// | 分隔字串
	var fromString RecipeInput
	require.NoError(t, json.Unmarshal([]byte(`{"recipe_title":"Soup","ingredients":"Onion|Garlic| "}`), &fromString))
	assert.Equal(t, []string{"Onion", "Garlic"}, fromString.IngredientList())

	// 字串陣列
	var fromList RecipeInput
	require.NoError(t, json.Unmarshal([]byte(`{"recipe_title":"Soup","ingredients":["Onion","Garlic"]}`), &fromList))
	assert.Equal(t, []string{"Onion", "Garlic"}, fromList.IngredientList())

	// items 物件陣列
	var fromItems RecipeInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Soup","items":[{"name":"Onion"},{"name":""}]}`), &fromItems))
	assert.Equal(t, "Soup", fromItems.Title())
	assert.Equal(t, []string{"Onion"}, fromItems.IngredientList())
}
