package suggest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"grocygo-backend/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeRecord 靜態食譜資料集中的一列，載入後唯讀
type RecipeRecord struct {
	Title        string `json:"recipe_title"`
	Ingredients  string `json:"ingredients"` // 以 | 分隔的原始字串
	URL          string `json:"url"`
	Image        string `json:"recipe_image"`
	PrepTime     string `json:"prep_time"`
	Course       string `json:"course"`
	Diet         string `json:"diet"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

// IngredientNames 拆出食材名稱列表，空白項目不回傳；永不回傳 nil
func (r RecipeRecord) IngredientNames() []string {
	names := make([]string, 0)
	for _, part := range strings.Split(r.Ingredients, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

// Corpus 食譜資料集存取器。
// 首次讀取時載入 CSV 並快取到行程結束，Reload 為明確的重載掛鉤。
type Corpus struct {
	path string

	mu      sync.Mutex
	records []RecipeRecord
	loaded  bool
}

// NewCorpus 創建食譜資料集存取器，不立即載入
func NewCorpus(path string) *Corpus {
	return &Corpus{path: path}
}

// Records 回傳全部食譜，首次呼叫時載入。
// 載入失敗回傳 CORPUS_UNAVAILABLE，由呼叫端決定是否降級為「無建議」。
func (c *Corpus) Records() ([]RecipeRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.records, nil
	}

	records, err := loadRecipeCSV(c.path)
	if err != nil {
		return nil, common.NewError(common.ErrCodeCorpusUnavailable, "食譜資料集無法載入", common.ErrCorpusUnavailable.Status, err)
	}

	c.records = records
	c.loaded = true
	common.LogInfo("食譜資料集已載入",
		zap.String("path", c.path),
		zap.Int("count", len(records)),
	)
	return c.records, nil
}

// Reload 丟棄快取，下次 Records 重新載入
func (c *Corpus) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.loaded = false
}

// loadRecipeCSV 讀取食譜 CSV。第一行為欄位名稱，缺少的欄位以空字串補齊。
func loadRecipeCSV(path string) ([]RecipeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recipes csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read recipes csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["recipe_title"]; !ok {
		return nil, fmt.Errorf("recipes csv missing recipe_title column")
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	records := make([]RecipeRecord, 0)
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read recipes csv: %w", err)
		}

		rec := RecipeRecord{
			Title:        field(row, "recipe_title"),
			Ingredients:  field(row, "ingredients"),
			URL:          field(row, "url"),
			Image:        field(row, "recipe_image"),
			PrepTime:     field(row, "prep_time"),
			Course:       field(row, "course"),
			Diet:         field(row, "diet"),
			Description:  field(row, "description"),
			Instructions: field(row, "instructions"),
		}
		// 缺標題的列跳過，單筆壞資料不中斷整個資料集
		if rec.Title == "" {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		common.LogWarn("跳過缺少標題的食譜列",
			zap.Int("skipped", skipped),
		)
	}
	return records, nil
}
