package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeIngredients(t *testing.T) {
	vec := EncodeIngredients([]string{"onion", "garlic", "onion", ""})

	assert.Equal(t, 2.0, vec["onion"])
	assert.Equal(t, 1.0, vec["garlic"])
	assert.NotContains(t, vec, "")
}

func TestCosineSimilarityIdentical(t *testing.T) {
	a := EncodeIngredients([]string{"onion", "garlic", "salt"})

	assert.InDelta(t, 1.0, CosineSimilarity(a, a), 1e-9)
}

func TestCosineSimilarityDisjoint(t *testing.T) {
	a := EncodeIngredients([]string{"onion", "garlic"})
	b := EncodeIngredients([]string{"milk", "sugar"})

	assert.Equal(t, 0.0, CosineSimilarity(a, b))
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	a := EncodeIngredients([]string{"onion"})
	empty := EncodeIngredients(nil)

	assert.Equal(t, 0.0, CosineSimilarity(a, empty))
	assert.Equal(t, 0.0, CosineSimilarity(empty, a))
	assert.Equal(t, 0.0, CosineSimilarity(empty, empty))
}

func TestCosineSimilarityBounds(t *testing.T) {
	a := EncodeIngredients([]string{"onion", "garlic", "milk", "salt"})
	b := EncodeIngredients([]string{"onion", "garlic", "butter"})

	score := CosineSimilarity(a, b)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 1.0)
}
