package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Store       StoreConfig     `mapstructure:"store"`
	Corpus      CorpusConfig    `mapstructure:"corpus"`
	Suggest     SuggestConfig   `mapstructure:"suggest"`
	Notify      NotifyConfig    `mapstructure:"notify"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// AuthConfig 認證設定（API Key + JWT）
type AuthConfig struct {
	APIKey    string `mapstructure:"api_key"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// StoreConfig 文件存儲設定
type StoreConfig struct {
	Driver        string        `mapstructure:"driver"` // memory | redis
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	DialTimeout   time.Duration `mapstructure:"dial_timeout"`
}

// CorpusConfig 食譜資料集設定
type CorpusConfig struct {
	RecipesPath string `mapstructure:"recipes_path"`
	CatalogPath string `mapstructure:"catalog_path"`
}

// SuggestConfig 推薦引擎設定
type SuggestConfig struct {
	SynonymMode string   `mapstructure:"synonym_mode"` // exact | substring
	TopK        int      `mapstructure:"top_k"`
	Courses     []string `mapstructure:"courses"`
}

// NotifyConfig 到期通知掃描設定
type NotifyConfig struct {
	Workers int `mapstructure:"workers"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件（允許不存在）
	_ = godotenv.Load()

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("auth.api_key", "API_KEY")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("store.driver", "STORE_DRIVER")
	viper.BindEnv("store.redis_addr", "REDIS_ADDR")
	viper.BindEnv("store.redis_password", "REDIS_PASSWORD")
	viper.BindEnv("corpus.recipes_path", "RECIPES_CSV")
	viper.BindEnv("corpus.catalog_path", "GROCERY_CSV")
	viper.BindEnv("suggest.synonym_mode", "SYNONYM_MODE")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "grocygo-backend")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 存儲設定
	viper.SetDefault("store.driver", "redis")
	viper.SetDefault("store.redis_addr", "localhost:6379")
	viper.SetDefault("store.redis_db", 0)
	viper.SetDefault("store.dial_timeout", "5s")

	// 資料集設定
	viper.SetDefault("corpus.recipes_path", "data/recipes.csv")
	viper.SetDefault("corpus.catalog_path", "data/Grocery_Inventory.csv")

	// 推薦引擎設定
	viper.SetDefault("suggest.synonym_mode", "substring")
	viper.SetDefault("suggest.top_k", 5)
	viper.SetDefault("suggest.courses", []string{"Breakfast", "Lunch", "Dinner"})

	// 到期通知掃描設定
	viper.SetDefault("notify.workers", 5)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 去重窗口預設
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證存儲設定
	switch config.Store.Driver {
	case "memory":
	case "redis":
		if config.Store.RedisAddr == "" {
			return fmt.Errorf("redis addr is required")
		}
	default:
		return fmt.Errorf("unknown store driver: %s", config.Store.Driver)
	}

	// 驗證推薦引擎設定
	switch config.Suggest.SynonymMode {
	case "exact", "substring":
	default:
		return fmt.Errorf("unknown synonym mode: %s", config.Suggest.SynonymMode)
	}
	if config.Suggest.TopK <= 0 {
		return fmt.Errorf("invalid suggest top_k")
	}

	// 驗證掃描設定
	if config.Notify.Workers <= 0 {
		return fmt.Errorf("invalid notify workers")
	}

	return nil
}
