package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	What3words What3wordsConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type What3wordsConfig struct {
	APIKey        string
	BaseURL       string
	LegacyBaseURL string
	Referer       string
	Headers       map[string]string
	Timeout       time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the .env file at path, if present, and the
// process environment. Environment variables take precedence.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("W3W_BASE_URL", "https://api.what3words.com/v3/")
	v.SetDefault("W3W_LEGACY_BASE_URL", "https://api.what3words.com/v2/")
	v.SetDefault("W3W_TIMEOUT", 30)

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	headers, err := parseHeaders(v.GetString("W3W_HEADERS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		What3words: What3wordsConfig{
			APIKey:        v.GetString("W3W_API_KEY"),
			BaseURL:       v.GetString("W3W_BASE_URL"),
			LegacyBaseURL: v.GetString("W3W_LEGACY_BASE_URL"),
			Referer:       v.GetString("W3W_REFERER"),
			Headers:       headers,
			Timeout:       time.Duration(v.GetInt("W3W_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	if c.What3words.APIKey == "" {
		errs = append(errs, "W3W_API_KEY is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("API_PORT must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.What3words.Timeout <= 0 {
		errs = append(errs, "W3W_TIMEOUT must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// parseHeaders reads "Name:value,Name:value".
func parseHeaders(s string) (map[string]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	headers := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid W3W_HEADERS entry %q, expected Name:value", pair)
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
