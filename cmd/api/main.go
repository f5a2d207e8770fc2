package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocygo-backend/internal/api"
	"grocygo-backend/internal/core/catalog"
	"grocygo-backend/internal/core/suggest"
	"grocygo-backend/internal/infrastructure/config"
	"grocygo-backend/internal/infrastructure/store"
	"grocygo-backend/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 使用 logger 記錄啟動信息
	common.LogInfo("載入設定",
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("recipes_path", cfg.Corpus.RecipesPath),
		zap.String("synonym_mode", cfg.Suggest.SynonymMode),
	)

	// 初始化文件存儲
	st, err := newStore(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize store", zap.Error(err))
	}
	defer st.Close()

	// 初始化推薦引擎與商品目錄
	corpus := suggest.NewCorpus(cfg.Corpus.RecipesPath)
	norm := suggest.NewNormalizer(suggest.SynonymMode(cfg.Suggest.SynonymMode))
	engine := suggest.NewEngine(corpus, norm, cfg.Suggest.TopK, cfg.Suggest.Courses)
	cat := catalog.NewCatalog(cfg.Corpus.CatalogPath)

	// 設置路由
	router, err := api.SetupRouter(cfg, st, engine, cat)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}

// newStore 依設定選擇文件存儲驅動
func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return store.NewRedisStore(&cfg.Store)
	}
}
