package suggest

import (
	"sort"
	"strings"
)

// SynonymMode 同義詞比對模式
type SynonymMode string

const (
	// SynonymExact 清理後字串與同義詞鍵完全相等才折疊
	SynonymExact SynonymMode = "exact"
	// SynonymSubstring 清理後字串包含同義詞鍵即折疊
	SynonymSubstring SynonymMode = "substring"
)

// 常見在地食材名稱對應
var synonymMap = map[string]string{
	"ringan":  "brinjal",
	"baingan": "eggplant",
	"mirchi":  "chili",
	"methi":   "fenugreek",
	"besan":   "gram flour",
	"maida":   "all purpose flour",
	"haldi":   "turmeric",
	"atta":    "wheat flour",
	"dhania":  "coriander",
	"jeera":   "cumin",
}

// synonymKeys 排序後的鍵，子字串模式下依固定順序比對，避免 map 迭代順序造成不確定結果
var synonymKeys = func() []string {
	keys := make([]string, 0, len(synonymMap))
	for k := range synonymMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// Normalizer 食材名稱正規化器
type Normalizer struct {
	mode SynonymMode
}

// NewNormalizer 創建正規化器
func NewNormalizer(mode SynonymMode) *Normalizer {
	if mode != SynonymExact {
		mode = SynonymSubstring
	}
	return &Normalizer{mode: mode}
}

// Mode 回傳同義詞比對模式
func (n *Normalizer) Mode() SynonymMode {
	return n.mode
}

// Normalize 將原始食材字串轉為可比較的鍵。
// 任何輸入都不會失敗，空白輸入回傳空字串。
func (n *Normalizer) Normalize(raw string) string {
	cleaned := cleanIngredient(raw)
	if cleaned == "" {
		return ""
	}

	switch n.mode {
	case SynonymExact:
		if canonical, ok := synonymMap[cleaned]; ok {
			return cleanIngredient(canonical)
		}
	default:
		for _, key := range synonymKeys {
			if strings.Contains(cleaned, key) {
				return cleanIngredient(synonymMap[key])
			}
		}
	}
	return cleaned
}

// NormalizeAll 正規化整個列表，丟棄清理後為空的項目並去除重複，保留首見順序
func (n *Normalizer) NormalizeAll(raws []string) []string {
	seen := make(map[string]struct{}, len(raws))
	keys := make([]string, 0, len(raws))
	for _, raw := range raws {
		key := n.Normalize(raw)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// cleanIngredient 小寫、去頭尾空白、折疊連續空白，移除 [a-z0-9 ] 以外的字元
func cleanIngredient(raw string) string {
	lowered := strings.ToLower(raw)

	var sb strings.Builder
	sb.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			sb.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
