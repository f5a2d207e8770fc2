package suggest

import "strings"

// BuildShoppingList 將多筆食譜缺少的食材彙整成一份購物清單。
// 每個缺少的食材鍵只產生一個項目，needed_for 依首見順序列出需要它的食譜標題且不重複；
// 沒有標題或沒有任何食材的食譜不產生任何項目。
func (e *Engine) BuildShoppingList(inventoryNames []string, recipes []RecipeInput) []ShoppingEntry {
	invSet := keySet(e.norm.NormalizeAll(inventoryNames))

	order := make([]string, 0)
	neededFor := make(map[string][]string)
	seenTitle := make(map[string]map[string]struct{})

	for _, recipe := range recipes {
		title := strings.TrimSpace(recipe.Title())
		if title == "" {
			continue
		}

		missing := recipe.MissingIngredients
		if len(missing) == 0 {
			ingredients := recipe.IngredientList()
			if len(ingredients) == 0 {
				continue
			}
			missing = e.MatchIngredients(ingredients, inventoryNames).Missing
		}

		for _, raw := range missing {
			item := e.norm.Normalize(raw)
			if item == "" {
				continue
			}
			// 已在庫存內的項目不需要購買
			if _, ok := invSet[item]; ok {
				continue
			}

			if _, ok := neededFor[item]; !ok {
				order = append(order, item)
				neededFor[item] = make([]string, 0, 1)
				seenTitle[item] = make(map[string]struct{})
			}
			if _, ok := seenTitle[item][title]; ok {
				continue
			}
			seenTitle[item][title] = struct{}{}
			neededFor[item] = append(neededFor[item], title)
		}
	}

	entries := make([]ShoppingEntry, 0, len(order))
	for _, item := range order {
		entries = append(entries, ShoppingEntry{Item: item, NeededFor: neededFor[item]})
	}
	return entries
}
