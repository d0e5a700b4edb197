package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"
)

const defaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App       AppConfig
	Directory DirectoryConfig
	Redis     RedisConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

// DirectoryConfig describes the remote source of doctor records.
type DirectoryConfig struct {
	SourceURL    string
	FetchTimeout time.Duration
}

// RedisConfig is optional. An empty Host disables the result cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the given env file when it exists and overlays the
// process environment on top of it.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DIRECTORY_SOURCE_URL", defaultSourceURL)
	v.SetDefault("DIRECTORY_FETCH_TIMEOUT", "30s")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RESULT_CACHE_TTL", "5m")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	fetchTimeout, err := time.ParseDuration(v.GetString("DIRECTORY_FETCH_TIMEOUT"))
	if err != nil || fetchTimeout <= 0 {
		fetchTimeout = 30 * time.Second
	}

	cacheTTL, err := time.ParseDuration(v.GetString("RESULT_CACHE_TTL"))
	if err != nil || cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Directory: DirectoryConfig{
			SourceURL:    v.GetString("DIRECTORY_SOURCE_URL"),
			FetchTimeout: fetchTimeout,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      cacheTTL,
		},
	}

	return config, nil
}
