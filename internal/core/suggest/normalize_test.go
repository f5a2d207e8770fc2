package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCleansInput(t *testing.T) {
	n := NewNormalizer(SynonymSubstring)

	tests := []struct {
		raw  string
		want string
	}{
		{"Onion", "onion"},
		{"  Red   Onion  ", "red onion"},
		{"Sea-Salt!", "seasalt"},
		{"All-Purpose Flour", "allpurpose flour"},
		{"", ""},
		{"   ", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Normalize(tt.raw), "raw=%q", tt.raw)
	}
}

func TestNormalizeSubstringSynonyms(t *testing.T) {
	n := NewNormalizer(SynonymSubstring)

	assert.Equal(t, "turmeric", n.Normalize("Haldi"))
	assert.Equal(t, "turmeric", n.Normalize("haldi powder"))
	assert.Equal(t, "cumin", n.Normalize("Jeera Seeds"))
	assert.Equal(t, "all purpose flour", n.Normalize("maida"))
	// 非同義詞原樣保留
	assert.Equal(t, "fresh basil", n.Normalize("Fresh Basil"))
}

func TestNormalizeExactSynonyms(t *testing.T) {
	n := NewNormalizer(SynonymExact)

	assert.Equal(t, "turmeric", n.Normalize("Haldi"))
	// exact 模式下部分包含不折疊
	assert.Equal(t, "haldi powder", n.Normalize("haldi powder"))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, mode := range []SynonymMode{SynonymExact, SynonymSubstring} {
		n := NewNormalizer(mode)
		inputs := []string{"Haldi", "maida", "Jeera Seeds", "Red Onion", "All-Purpose Flour", "besan"}
		for _, raw := range inputs {
			once := n.Normalize(raw)
			assert.Equal(t, once, n.Normalize(once), "mode=%s raw=%q", mode, raw)
		}
	}
}

func TestNormalizerDefaultsToSubstring(t *testing.T) {
	n := NewNormalizer(SynonymMode("bogus"))
	assert.Equal(t, SynonymSubstring, n.Mode())
}

func TestNormalizeAll(t *testing.T) {
	n := NewNormalizer(SynonymSubstring)

	keys := n.NormalizeAll([]string{"Onion", "onion", "  ", "Haldi", "turmeric", "Garlic"})
	// 重複與空白丟棄，保留首見順序
	assert.Equal(t, []string{"onion", "turmeric", "garlic"}, keys)
}
