package catalog

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

// 回傳的建議筆數上限
const maxSuggestions = 20

// Product 商品目錄中的一筆建議
type Product struct {
	Product  string `json:"product"`
	Category string `json:"category"`
}

// Catalog 新增庫存時的商品名稱自動完成目錄。
// 首次查詢時載入 CSV 並快取到行程結束。
type Catalog struct {
	path string

	mu       sync.Mutex
	products []Product
	loaded   bool
	loadErr  error
}

// NewCatalog 創建商品目錄
func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

// Search 回傳商品或分類包含 q（大小寫不敏感）的前 20 筆建議。
// 目錄檔缺失時回傳空列表：自動完成屬於輔助功能，不阻斷新增庫存。
func (c *Catalog) Search(q string) []Product {
	products := c.load()

	q = strings.ToLower(strings.TrimSpace(q))
	results := make([]Product, 0, maxSuggestions)
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Product), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		results = append(results, p)
		if len(results) == maxSuggestions {
			break
		}
	}
	return results
}

func (c *Catalog) load() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.products
	}
	c.loaded = true

	products, err := loadCatalogCSV(c.path)
	if err != nil {
		c.loadErr = err
		common.LogWarn("商品目錄無法載入，自動完成停用",
			zap.String("path", c.path),
			zap.Error(err),
		)
		return nil
	}
	c.products = products
	common.LogInfo("商品目錄已載入",
		zap.String("path", c.path),
		zap.Int("count", len(products)),
	)
	return c.products
}

// loadCatalogCSV 讀取商品目錄 CSV。
// 欄位名稱 Catagory 為資料檔既有拼法，不可更正。
func loadCatalogCSV(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog csv header: %w", err)
	}
	nameIdx, catIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Product_Name":
			nameIdx = i
		case "Catagory":
			catIdx = i
		}
	}
	if nameIdx < 0 || catIdx < 0 {
		return nil, fmt.Errorf("catalog csv missing Product_Name/Catagory columns")
	}

	products := make([]Product, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog csv: %w", err)
		}
		if nameIdx >= len(row) || catIdx >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])
		category := strings.TrimSpace(row[catIdx])
		if name == "" || category == "" {
			continue
		}
		products = append(products, Product{Product: name, Category: category})
	}
	return products, nil
}
