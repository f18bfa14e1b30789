// Package config 负责加载并校验应用配置，配置来源为环境变量（支持 .env 文件）。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig 应用基础配置
type AppConfig struct {
	Name    string
	Env     string // dev | prod
	Version string
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string // debug | info | warn | error
	Encoding string // json | console
}

// StorefrontConfig 店面远程服务配置
type StorefrontConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// ThemeConfig 主题图片尺寸配置
type ThemeConfig struct {
	ZoomImageSize    string
	ProductImageSize string
}

// CartConfig 购物车预览配置
type CartConfig struct {
	SuggestionsLimit int
}

// Config 聚合应用全部配置
type Config struct {
	App        AppConfig
	Log        LogConfig
	Storefront StorefrontConfig
	Theme      ThemeConfig
	Cart       CartConfig
}

// Load 加载配置：优先读取进程环境变量，缺省值兜底；
// 工作目录存在 .env 文件时先行载入
func Load() (*Config, error) {
	// .env 缺失不视为错误，线上环境直接使用进程环境变量
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "product-page"),
			Env:     getEnv("APP_ENV", "dev"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "console"),
		},
		Storefront: StorefrontConfig{
			BaseURL:        getEnv("STOREFRONT_BASE_URL", ""),
			RequestTimeout: getDurationEnv("STOREFRONT_TIMEOUT", 10*time.Second),
		},
		Theme: ThemeConfig{
			ZoomImageSize:    getEnv("THEME_ZOOM_IMAGE_SIZE", "1280x1280"),
			ProductImageSize: getEnv("THEME_PRODUCT_IMAGE_SIZE", "608x608"),
		},
		Cart: CartConfig{
			SuggestionsLimit: getIntEnv("CART_SUGGESTIONS_LIMIT", 4),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate 校验配置合法性
func (c *Config) validate() error {
	if c.App.Env != "dev" && c.App.Env != "prod" {
		return fmt.Errorf("invalid APP_ENV %q, expect dev or prod", c.App.Env)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_ENCODING %q, expect json or console", c.Log.Encoding)
	}
	if c.Storefront.RequestTimeout <= 0 {
		return fmt.Errorf("STOREFRONT_TIMEOUT must be positive")
	}
	if c.Cart.SuggestionsLimit < 0 {
		return fmt.Errorf("CART_SUGGESTIONS_LIMIT must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
