// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	CatalogPath   string
	Sheet         string // xlsx sheet; empty means the active sheet
	NameColumn    string
	CoursesColumn string

	Watch         bool
	WatchDebounce time.Duration

	CacheTTL  time.Duration
	CacheSize int

	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	RateLimitPerMinute int
	RateLimitBurst     int

	GridColumns int
	LogLevel    string
}

var AppConfig Config

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault("catalog_path", "CS Groups.xlsx")
	viper.SetDefault("sheet", "")
	viper.SetDefault("name_column", "GroupName")
	viper.SetDefault("courses_column", "Description (COURSES)")

	viper.SetDefault("watch", true)
	viper.SetDefault("watch_debounce", "500ms")

	viper.SetDefault("cache_ttl", "5m")
	viper.SetDefault("cache_size", 256)

	viper.SetDefault("host", "localhost")
	viper.SetDefault("port", "8080")
	viper.SetDefault("read_timeout", "15s")
	viper.SetDefault("write_timeout", "15s")
	viper.SetDefault("idle_timeout", "60s")

	viper.SetDefault("rate_limit_per_minute", 600)
	viper.SetDefault("rate_limit_burst", 60)

	viper.SetDefault("grid_columns", 4)
	viper.SetDefault("log_level", "info")
}

// InitConfig initializes the application configuration
func InitConfig() {
	SetDefaults()

	AppConfig = Config{
		CatalogPath:   viper.GetString("catalog_path"),
		Sheet:         viper.GetString("sheet"),
		NameColumn:    viper.GetString("name_column"),
		CoursesColumn: viper.GetString("courses_column"),

		Watch:         viper.GetBool("watch"),
		WatchDebounce: viper.GetDuration("watch_debounce"),

		CacheTTL:  viper.GetDuration("cache_ttl"),
		CacheSize: viper.GetInt("cache_size"),

		Host:         viper.GetString("host"),
		Port:         viper.GetString("port"),
		ReadTimeout:  viper.GetDuration("read_timeout"),
		WriteTimeout: viper.GetDuration("write_timeout"),
		IdleTimeout:  viper.GetDuration("idle_timeout"),

		RateLimitPerMinute: viper.GetInt("rate_limit_per_minute"),
		RateLimitBurst:     viper.GetInt("rate_limit_burst"),

		GridColumns: viper.GetInt("grid_columns"),
		LogLevel:    strings.ToLower(viper.GetString("log_level")),
	}

	// Normalize values that would break the renderers or the cache
	if AppConfig.GridColumns < 1 {
		AppConfig.GridColumns = 4
	}
	if AppConfig.CacheSize < 0 {
		AppConfig.CacheSize = 0
	}
	if AppConfig.LogLevel == "" {
		AppConfig.LogLevel = "info"
	}
}
