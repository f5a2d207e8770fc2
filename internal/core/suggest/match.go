package suggest

import (
	"fmt"
	"sort"
	"strings"
)

// 預設目標餐別，未指定 course 篩選時逐一挑選
var defaultCourses = []string{"Breakfast", "Lunch", "Dinner"}

// Engine 食譜比對與推薦引擎。
// 全部操作皆為純計算，唯一共享狀態是唯讀的食譜資料集快取。
type Engine struct {
	corpus  *Corpus
	norm    *Normalizer
	topK    int
	courses []string
}

// NewEngine 創建推薦引擎
func NewEngine(corpus *Corpus, norm *Normalizer, topK int, courses []string) *Engine {
	if topK <= 0 {
		topK = 5
	}
	if len(courses) == 0 {
		courses = defaultCourses
	}
	return &Engine{
		corpus:  corpus,
		norm:    norm,
		topK:    topK,
		courses: courses,
	}
}

// Normalizer 回傳引擎使用的正規化器
func (e *Engine) Normalizer() *Normalizer {
	return e.norm
}

// MatchIngredients 比對一份食材列表與庫存，回傳 matched/missing 分割與覆蓋率。
// 覆蓋率分母固定取 max(食材數, 1)，零食材食譜的覆蓋率為 0 而非 NaN。
func (e *Engine) MatchIngredients(ingredientNames, inventoryNames []string) MatchResult {
	invSet := keySet(e.norm.NormalizeAll(inventoryNames))
	keys := e.norm.NormalizeAll(ingredientNames)

	matched := make([]string, 0, len(keys))
	missing := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := invSet[key]; ok {
			matched = append(matched, key)
		} else {
			missing = append(missing, key)
		}
	}

	return MatchResult{
		Matched:       matched,
		Missing:       missing,
		CoverageRatio: float64(len(matched)) / float64(coverageDenominator(len(keys))),
	}
}

// MatchRecipe 比對單一食譜與庫存
func (e *Engine) MatchRecipe(rec RecipeRecord, inventoryNames []string) MatchResult {
	return e.MatchIngredients(rec.IngredientNames(), inventoryNames)
}

// SuggestRecipes 依詞袋餘弦相似度回傳與庫存最接近的前 K 筆食譜。
// course/diet 為大小寫不敏感的子字串篩選；篩選後為空時退回整個資料集。
func (e *Engine) SuggestRecipes(inventoryNames []string, course, diet string) ([]Suggestion, error) {
	records, err := e.corpus.Records()
	if err != nil {
		return nil, err
	}

	invKeys := e.norm.NormalizeAll(inventoryNames)
	invSet := keySet(invKeys)
	userVec := EncodeIngredients(invKeys)

	filtered := filterRecords(records, course, diet)
	if len(filtered) == 0 {
		filtered = records
	}

	// 計算每筆食譜的相似度
	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(filtered))
	for i, rec := range filtered {
		recVec := EncodeIngredients(e.normalizeKeys(rec.IngredientNames()))
		scores[i] = scored{idx: i, score: CosineSimilarity(userVec, recVec)}
	}

	// 穩定排序：相同分數維持資料集順序，輸出必須可重現
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	limit := e.topK
	if limit > len(scores) {
		limit = len(scores)
	}

	results := make([]Suggestion, 0, limit)
	for _, sc := range scores[:limit] {
		rec := filtered[sc.idx]
		results = append(results, e.buildSuggestion(rec, invSet, fmt.Sprintf("%s_%d", rec.Title, sc.idx)))
	}
	return results, nil
}

// SuggestMealPlan 為每個目標餐別挑出覆蓋率最高的一筆食譜。
// 沒有合格候選的餐別直接跳過，不補預設值。
func (e *Engine) SuggestMealPlan(inventoryNames []string, diet, course string) ([]Suggestion, error) {
	records, err := e.corpus.Records()
	if err != nil {
		return nil, err
	}

	invSet := keySet(e.norm.NormalizeAll(inventoryNames))

	courseList := e.courses
	if strings.TrimSpace(course) != "" {
		courseList = []string{course}
	}

	suggestions := make([]Suggestion, 0, len(courseList))
	for _, c := range courseList {
		var best *RecipeRecord
		bestRatio := -1.0
		for i := range records {
			rec := &records[i]
			if !matchesFilter(rec.Course, c) || !matchesFilter(rec.Diet, diet) {
				continue
			}
			keys := e.norm.NormalizeAll(rec.IngredientNames())
			matched := 0
			for _, key := range keys {
				if _, ok := invSet[key]; ok {
					matched++
				}
			}
			ratio := float64(matched) / float64(coverageDenominator(len(keys)))
			// 嚴格大於：同分保留資料集順序較前者
			if ratio > bestRatio {
				bestRatio = ratio
				best = rec
			}
		}
		if best == nil {
			continue
		}
		suggestions = append(suggestions, e.buildSuggestion(*best, invSet, fmt.Sprintf("%s_%s", best.Title, c)))
	}
	return suggestions, nil
}

// buildSuggestion 組裝單筆建議
func (e *Engine) buildSuggestion(rec RecipeRecord, invSet map[string]struct{}, id string) Suggestion {
	keys := e.norm.NormalizeAll(rec.IngredientNames())
	matched := make([]string, 0, len(keys))
	missing := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := invSet[key]; ok {
			matched = append(matched, key)
		} else {
			missing = append(missing, key)
		}
	}

	return Suggestion{
		RecipeTitle:          rec.Title,
		Ingredients:          rec.Ingredients,
		URL:                  rec.URL,
		RecipeImage:          rec.Image,
		PrepTime:             rec.PrepTime,
		Course:               rec.Course,
		Diet:                 rec.Diet,
		MatchedIngredients:   matched,
		MissingIngredients:   missing,
		Description:          rec.Description,
		Instructions:         rec.Instructions,
		IngredientsAvailable: len(matched),
		IngredientsTotal:     len(keys),
		ID:                   id,
	}
}

// normalizeKeys 正規化但保留重複項目，詞袋向量需要出現次數
func (e *Engine) normalizeKeys(raws []string) []string {
	keys := make([]string, 0, len(raws))
	for _, raw := range raws {
		if key := e.norm.Normalize(raw); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// coverageDenominator 覆蓋率分母下限為 1，避免除以零
func coverageDenominator(count int) int {
	if count < 1 {
		return 1
	}
	return count
}

// filterRecords 依 course/diet 篩選
func filterRecords(records []RecipeRecord, course, diet string) []RecipeRecord {
	filtered := make([]RecipeRecord, 0, len(records))
	for _, rec := range records {
		if matchesFilter(rec.Course, course) && matchesFilter(rec.Diet, diet) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// matchesFilter 空篩選一律通過；否則大小寫不敏感的子字串比對
func matchesFilter(value, filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}
