package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"grocygo-backend/internal/core/notification"
	"grocygo-backend/internal/infrastructure/config"
	"grocygo-backend/internal/infrastructure/store"
	"grocygo-backend/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// 到期掃描排程進入點，執行一次掃描後結束（交由 cron 排程）
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

	// 初始化 logger
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 初始化文件存儲
	var st store.Store
	switch cfg.Store.Driver {
	case "memory":
		st = store.NewMemoryStore()
	default:
		rs, err := store.NewRedisStore(&cfg.Store)
		if err != nil {
			common.LogFatal("Failed to initialize store", zap.Error(err))
		}
		st = rs
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	svc := notification.NewService(st, cfg.Notify.Workers)
	result, err := svc.Sweep(ctx)
	if err != nil {
		common.LogFatal("Expiry sweep failed", zap.Error(err))
	}

	common.LogInfo("到期掃描完成",
		zap.Int("users", result.Users),
		zap.Int("notified", result.Notified),
		zap.Int("failed", result.Failed),
	)
}
