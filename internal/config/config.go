package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the Art Institute of Chicago artworks endpoint
const DefaultBaseURL = "https://api.artic.edu/api/v1/artworks"

// Config holds all application configuration
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Selection SelectionConfig `mapstructure:"selection"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// CatalogConfig holds remote catalog configuration
type CatalogConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	PageSize  int           `mapstructure:"page_size"`
	Fields    []string      `mapstructure:"fields"` // Sent as the "fields" query parameter; empty = all fields
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// SelectionConfig holds bulk selection limits
type SelectionConfig struct {
	MaxBulk  int           `mapstructure:"max_bulk"` // Upper clamp for the bulk count input
	Debounce time.Duration `mapstructure:"debounce"` // Delay before a changed count triggers a bulk run
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// MetricsConfig holds the optional prometheus listener
type MetricsConfig struct {
	Listen string `mapstructure:"listen"` // e.g. "127.0.0.1:9120"; empty disables
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:  DefaultBaseURL,
			PageSize: 12,
			Fields: []string{
				"id", "title", "place_of_origin", "artist_display",
				"inscriptions", "date_start", "date_end",
			},
			Timeout:   30 * time.Second,
			UserAgent: "easel/1.0",
		},
		Selection: SelectionConfig{
			MaxBulk:  120,
			Debounce: 300 * time.Millisecond,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "easel", "easel.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "easel", "easel.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "easel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "easel")
	}
}

// LoadConfig loads configuration from file and environment.
// An empty configFile searches the default locations; a missing file there is not an error.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	setDefaults(v, cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides: EASEL_CATALOG_BASE_URL etc.
	v.SetEnvPrefix("EASEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.base_url", cfg.Catalog.BaseURL)
	v.SetDefault("catalog.page_size", cfg.Catalog.PageSize)
	v.SetDefault("catalog.fields", cfg.Catalog.Fields)
	v.SetDefault("catalog.timeout", cfg.Catalog.Timeout)
	v.SetDefault("catalog.user_agent", cfg.Catalog.UserAgent)
	v.SetDefault("selection.max_bulk", cfg.Selection.MaxBulk)
	v.SetDefault("selection.debounce", cfg.Selection.Debounce)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("metrics.listen", cfg.Metrics.Listen)
}

// Validate rejects configurations the catalog client cannot run with
func (c *Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required")
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("catalog page size must be positive, got %d", c.Catalog.PageSize)
	}
	if c.Selection.MaxBulk < 0 {
		return fmt.Errorf("selection max_bulk must not be negative, got %d", c.Selection.MaxBulk)
	}
	return nil
}
