// file: internal/config/persistence.go
// version: 2.0.0
// guid: 9c8d7e6f-5a4b-3c2d-1e0f-9a8b7c6d5e4f

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the file name looked up in the user's home directory.
const DefaultConfigName = ".course-group-finder.yaml"

// fileConfig mirrors the keys viper reads, in the order they are written.
type fileConfig struct {
	CatalogPath        string `yaml:"catalog_path"`
	Sheet              string `yaml:"sheet,omitempty"`
	NameColumn         string `yaml:"name_column"`
	CoursesColumn      string `yaml:"courses_column"`
	Watch              bool   `yaml:"watch"`
	WatchDebounce      string `yaml:"watch_debounce"`
	CacheTTL           string `yaml:"cache_ttl"`
	CacheSize          int    `yaml:"cache_size"`
	Host               string `yaml:"host"`
	Port               string `yaml:"port"`
	ReadTimeout        string `yaml:"read_timeout"`
	WriteTimeout       string `yaml:"write_timeout"`
	IdleTimeout        string `yaml:"idle_timeout"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
	RateLimitBurst     int    `yaml:"rate_limit_burst"`
	GridColumns        int    `yaml:"grid_columns"`
	LogLevel           string `yaml:"log_level"`
}

// DefaultConfigPath returns $HOME/.course-group-finder.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigName), nil
}

// Marshal renders cfg as YAML that InitConfig can read back.
func Marshal(cfg Config) ([]byte, error) {
	fc := fileConfig{
		CatalogPath:        cfg.CatalogPath,
		Sheet:              cfg.Sheet,
		NameColumn:         cfg.NameColumn,
		CoursesColumn:      cfg.CoursesColumn,
		Watch:              cfg.Watch,
		WatchDebounce:      cfg.WatchDebounce.String(),
		CacheTTL:           cfg.CacheTTL.String(),
		CacheSize:          cfg.CacheSize,
		Host:               cfg.Host,
		Port:               cfg.Port,
		ReadTimeout:        cfg.ReadTimeout.String(),
		WriteTimeout:       cfg.WriteTimeout.String(),
		IdleTimeout:        cfg.IdleTimeout.String(),
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		RateLimitBurst:     cfg.RateLimitBurst,
		GridColumns:        cfg.GridColumns,
		LogLevel:           cfg.LogLevel,
	}
	data, err := yaml.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// SaveConfigToFile writes cfg to path. An existing file is only replaced when overwrite is set.
func SaveConfigToFile(path string, cfg Config, overwrite bool) error {
	if path == "" {
		return fmt.Errorf("cannot determine config file path")
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Printf("[INFO] Configuration saved to file: %s", path)
	return nil
}
