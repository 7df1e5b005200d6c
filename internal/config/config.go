// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the process-wide sample configuration from the
// environment. Configuration is read once at startup and passed by pointer to
// the components that need it.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config carries every setting the samples read. All values have working
// defaults except the API key, which is required whenever a sample talks to a
// live model.
type Config struct {
	// GOOGLE_API_KEY. Required unless MockExternalAPIs or TestMode is set.
	APIKey string `mapstructure:"google_api_key"`

	// Model identifiers.
	DefaultModel string `mapstructure:"default_model"`
	LiteModel    string `mapstructure:"lite_model"`

	// Fallback session identity.
	AppName   string `mapstructure:"default_app_name"`
	UserID    string `mapstructure:"default_user_id"`
	SessionID string `mapstructure:"default_session_id"`

	// Retry policy used by adksession.Manager.RunQueryWithRetry.
	MaxRetries        int           `mapstructure:"max_retries"`
	RetryDelay        time.Duration `mapstructure:"retry_delay"`
	BackoffMultiplier float64       `mapstructure:"backoff_multiplier"`

	// Timeouts. RequestTimeout bounds a single RunQuery; the long-operation
	// timeout bounds multi-step workflows such as the sequential pipeline.
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	LongOperationTimeout time.Duration `mapstructure:"long_operation_timeout"`

	// Logging and diagnostics.
	LogLevel string `mapstructure:"log_level"`
	Verbose  bool   `mapstructure:"verbose"`
	Debug    bool   `mapstructure:"debug"`

	// Test knobs. MockExternalAPIs keeps the fetcher tools on canned data;
	// TestMode additionally disables their simulated latency.
	TestMode         bool `mapstructure:"test_mode"`
	MockExternalAPIs bool `mapstructure:"mock_external_apis"`

	// Sample-specific defaults.
	DefaultCity         string `mapstructure:"default_city"`
	DefaultNewsCategory string `mapstructure:"default_news_category"`
	DefaultStockSymbol  string `mapstructure:"default_stock_symbol"`
}

// Load reads the configuration from the environment, applying defaults for
// anything unset. Keys map to upper-cased environment variables, e.g.
// "default_model" is read from DEFAULT_MODEL and the API key from
// GOOGLE_API_KEY.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("google_api_key", "")
	v.SetDefault("default_model", "gemini-2.5-flash")
	v.SetDefault("lite_model", "gemini-2.5-flash-lite")
	v.SetDefault("default_app_name", "adk_samples")
	v.SetDefault("default_user_id", "default_user")
	v.SetDefault("default_session_id", "default_session")
	v.SetDefault("max_retries", 3)
	v.SetDefault("retry_delay", "1s")
	v.SetDefault("backoff_multiplier", 2.0)
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("long_operation_timeout", "2m")
	v.SetDefault("log_level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("debug", false)
	v.SetDefault("test_mode", false)
	v.SetDefault("mock_external_apis", true)
	v.SetDefault("default_city", "Tokyo")
	v.SetDefault("default_news_category", "technology")
	v.SetDefault("default_stock_symbol", "GOOG")

	v.AutomaticEnv()
	for _, key := range []string{
		"google_api_key", "default_model", "lite_model",
		"default_app_name", "default_user_id", "default_session_id",
		"max_retries", "retry_delay", "backoff_multiplier",
		"request_timeout", "long_operation_timeout",
		"log_level", "verbose", "debug", "test_mode", "mock_external_apis",
		"default_city", "default_news_category", "default_stock_symbol",
	} {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate reports whether the configuration is usable. A missing API key is
// fatal for any sample that calls a live model, so it fails validation unless
// the mock or test flags are set.
func (c *Config) Validate() error {
	if c.APIKey == "" && !c.MockExternalAPIs && !c.TestMode {
		return fmt.Errorf("GOOGLE_API_KEY is not set; set it or enable MOCK_EXTERNAL_APIS")
	}
	if c.AppName == "" {
		return fmt.Errorf("default_app_name must not be empty")
	}
	if c.UserID == "" || c.SessionID == "" {
		return fmt.Errorf("default session identity must not be empty")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative, got %d", c.MaxRetries)
	}
	if c.BackoffMultiplier < 1 {
		return fmt.Errorf("backoff_multiplier must be >= 1, got %v", c.BackoffMultiplier)
	}
	return nil
}

// LoggerLevel parses the configured log level, promoting it to debug when the
// debug flag is set. Unknown levels fall back to info.
func (c *Config) LoggerLevel() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// LogSummary emits the effective configuration with the API key masked.
func (c *Config) LogSummary(logger zerolog.Logger) {
	logger.Info().
		Bool("api_key_set", c.APIKey != "").
		Str("default_model", c.DefaultModel).
		Str("app_name", c.AppName).
		Str("user_id", c.UserID).
		Str("session_id", c.SessionID).
		Int("max_retries", c.MaxRetries).
		Dur("retry_delay", c.RetryDelay).
		Float64("backoff_multiplier", c.BackoffMultiplier).
		Dur("request_timeout", c.RequestTimeout).
		Bool("mock_external_apis", c.MockExternalAPIs).
		Bool("test_mode", c.TestMode).
		Msg("configuration loaded")
}
