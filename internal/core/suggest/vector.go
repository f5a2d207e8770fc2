package suggest

import "math"

// Vector 以正規化鍵為索引的詞袋向量，值為出現次數
type Vector map[string]float64

// EncodeIngredients 將正規化後的食材鍵編碼為詞袋向量
func EncodeIngredients(keys []string) Vector {
	vec := make(Vector, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		vec[key]++
	}
	return vec
}

// CosineSimilarity 計算兩個詞袋向量的餘弦相似度。
// 任一向量範數為 0 時回傳 0，不會產生 NaN。
func CosineSimilarity(a, b Vector) float64 {
	var dot, normA, normB float64
	for key, av := range a {
		normA += av * av
		if bv, ok := b[key]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
