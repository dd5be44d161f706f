package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"advocate-directory/pkg/validator"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Search  SearchConfig
	Breaker BreakerConfig
	Metrics MetricsConfig
	Browse  BrowseConfig
}

type AppConfig struct {
	Port     string `validate:"required,numeric"`
	Env      string `validate:"required,oneof=development staging production test"`
	LogLevel string `validate:"required"`
}

type DBConfig struct {
	Host         string `validate:"required"`
	Port         string `validate:"required,numeric"`
	User         string `validate:"required"`
	Password     string
	Name         string `validate:"required"`
	SSLMode      string `validate:"required"`
	TimeZone     string `validate:"required"`
	MaxIdleConns int    `validate:"gte=0"`
	MaxOpenConns int    `validate:"gte=1"`
}

// SearchConfig bounds the page size accepted by the advocate search.
type SearchConfig struct {
	DefaultLimit int `validate:"gte=1,ltefield=MaxLimit"`
	MaxLimit     int `validate:"gte=1"`
}

type BreakerConfig struct {
	MaxFailures uint32        `validate:"gte=1"`
	Timeout     time.Duration `validate:"gt=0"`
}

type MetricsConfig struct {
	Enabled bool
}

// BrowseConfig holds the defaults of the terminal search view.
type BrowseConfig struct {
	BaseURL  string        `validate:"required,url"`
	Debounce time.Duration `validate:"gte=0"`
	Limit    int           `validate:"gte=1"`
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "solaceassignment")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("DB_MAX_IDLE_CONNS", 10)
	viper.SetDefault("DB_MAX_OPEN_CONNS", 100)

	viper.SetDefault("SEARCH_DEFAULT_LIMIT", 10)
	viper.SetDefault("SEARCH_MAX_LIMIT", 100)

	viper.SetDefault("BREAKER_MAX_FAILURES", 5)
	viper.SetDefault("BREAKER_TIMEOUT", "30s")

	viper.SetDefault("METRICS_ENABLED", true)

	viper.SetDefault("BROWSE_BASE_URL", "http://localhost:8080")
	viper.SetDefault("BROWSE_DEBOUNCE", "300ms")
	viper.SetDefault("BROWSE_LIMIT", 10)
}

// LoadConfig reads .env when present, then lets environment variables
// override it.
func LoadConfig() (*Config, error) {
	viper.Reset()
	setDefaults()
	viper.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		viper.SetConfigFile(".env")
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	breakerTimeout, err := time.ParseDuration(viper.GetString("BREAKER_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid BREAKER_TIMEOUT: %w", err)
	}

	debounce, err := time.ParseDuration(viper.GetString("BROWSE_DEBOUNCE"))
	if err != nil {
		return nil, fmt.Errorf("invalid BROWSE_DEBOUNCE: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:         viper.GetString("DB_HOST"),
			Port:         viper.GetString("DB_PORT"),
			User:         viper.GetString("DB_USER"),
			Password:     viper.GetString("DB_PASSWORD"),
			Name:         viper.GetString("DB_NAME"),
			SSLMode:      viper.GetString("DB_SSLMODE"),
			TimeZone:     viper.GetString("DB_TIMEZONE"),
			MaxIdleConns: viper.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: viper.GetInt("DB_MAX_OPEN_CONNS"),
		},
		Search: SearchConfig{
			DefaultLimit: viper.GetInt("SEARCH_DEFAULT_LIMIT"),
			MaxLimit:     viper.GetInt("SEARCH_MAX_LIMIT"),
		},
		Breaker: BreakerConfig{
			MaxFailures: viper.GetUint32("BREAKER_MAX_FAILURES"),
			Timeout:     breakerTimeout,
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
		},
		Browse: BrowseConfig{
			BaseURL:  viper.GetString("BROWSE_BASE_URL"),
			Debounce: debounce,
			Limit:    viper.GetInt("BROWSE_LIMIT"),
		},
	}

	if err := validator.NewValidator().Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}
