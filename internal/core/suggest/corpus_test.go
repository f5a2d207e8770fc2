package suggest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"grocygo-backend/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRecipesCSV 寫入測試用食譜資料集
func writeRecipesCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testRecipesCSV = `recipe_title,ingredients,url,recipe_image,prep_time,course,diet,description,instructions
Onion Soup,Onion|Garlic|Butter,http://example.com/soup,soup.jpg,30 min,Dinner,Vegetarian,A warm soup,Chop and simmer
Masala Omelette,Egg|Onion|Mirchi,http://example.com/omelette,omelette.jpg,10 min,Breakfast,High Protein,Spiced omelette,Whisk and fry
Aloo Paratha,Atta|Potato|Haldi,http://example.com/paratha,paratha.jpg,40 min,Breakfast,Vegetarian,Stuffed flatbread,Knead and roast
Dal Tadka,Lentils|Jeera|Haldi|Onion,http://example.com/dal,dal.jpg,35 min,Lunch,Vegetarian,Comfort dal,Boil and temper
`

func TestCorpusRecords(t *testing.T) {
	path := writeRecipesCSV(t, testRecipesCSV)
	corpus := NewCorpus(path)

	records, err := corpus.Records()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "Onion Soup", records[0].Title)
	assert.Equal(t, "Onion|Garlic|Butter", records[0].Ingredients)
	assert.Equal(t, "Dinner", records[0].Course)
	assert.Equal(t, []string{"Onion", "Garlic", "Butter"}, records[0].IngredientNames())
}

func TestCorpusMissingFile(t *testing.T) {
	corpus := NewCorpus(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := corpus.Records()
	require.Error(t, err)

	var ce *common.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, common.ErrCodeCorpusUnavailable, ce.Code)
	assert.Equal(t, 503, ce.Status)
}

func TestCorpusMissingTitleColumn(t *testing.T) {
	path := writeRecipesCSV(t, "name,ingredients\nSoup,Onion\n")
	corpus := NewCorpus(path)

	_, err := corpus.Records()
	require.Error(t, err)

	var ce *common.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, common.ErrCodeCorpusUnavailable, ce.Code)
}

func TestCorpusSkipsRowsWithoutTitle(t *testing.T) {
	path := writeRecipesCSV(t, `recipe_title,ingredients
Soup,Onion|Garlic
,Milk|Sugar
Curry,Haldi|Jeera
`)
	corpus := NewCorpus(path)

	records, err := corpus.Records()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Soup", records[0].Title)
	assert.Equal(t, "Curry", records[1].Title)
}

func TestCorpusCachesAndReloads(t *testing.T) {
	path := writeRecipesCSV(t, testRecipesCSV)
	corpus := NewCorpus(path)

	first, err := corpus.Records()
	require.NoError(t, err)
	require.Len(t, first, 4)

	// 檔案改變但快取仍在
	require.NoError(t, os.WriteFile(path, []byte("recipe_title,ingredients\nOnly One,Onion\n"), 0o644))
	cached, err := corpus.Records()
	require.NoError(t, err)
	assert.Len(t, cached, 4)

	// Reload 後讀到新內容
	corpus.Reload()
	reloaded, err := corpus.Records()
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "Only One", reloaded[0].Title)
}

func TestIngredientNamesNeverNil(t *testing.T) {
	rec := RecipeRecord{Ingredients: ""}
	assert.NotNil(t, rec.IngredientNames())
	assert.Empty(t, rec.IngredientNames())

	rec = RecipeRecord{Ingredients: " | | "}
	assert.Empty(t, rec.IngredientNames())
}
