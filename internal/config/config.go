package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/subosito/gotenv"
)

type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	AnalysisTimeout    time.Duration
	MaxRequestBodySize int64

	// Analysis limits
	MaxTextLength int
	MaxBatchSize  int
	BatchWorkers  int

	// Sentiment label thresholds
	PositiveThreshold float64
	NegativeThreshold float64

	// Secondary VADER sentiment pass
	EnableVader bool

	CORSOrigins []string
}

func (c *Config) ServerAddress() string {
	// Trim any whitespace from host and port
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

func LoadFromEnv() (*Config, error) {
	// Load a local .env file when present; OS environment always wins
	if err := gotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	// Set defaults
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		AnalysisTimeout:    parseDurationOrDefault("ANALYSIS_TIMEOUT", 20*time.Second),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 10*1024*1024), // 10MB
		MaxTextLength:      int(parseIntOrDefault("MAX_TEXT_LENGTH", 100000)),
		MaxBatchSize:       int(parseIntOrDefault("MAX_BATCH_SIZE", 100)),
		BatchWorkers:       int(parseIntOrDefault("BATCH_WORKERS", 0)), // 0 = NumCPU
		PositiveThreshold:  parseFloatOrDefault("SENTIMENT_POSITIVE_THRESHOLD", 0.05),
		NegativeThreshold:  parseFloatOrDefault("SENTIMENT_NEGATIVE_THRESHOLD", -0.05),
		EnableVader:        parseBoolOrDefault("ENABLE_VADER", true),
		CORSOrigins:        parseListOrDefault("CORS_ORIGINS", []string{"*"}),
	}

	// Validate port is numeric and in range
	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.MaxTextLength <= 0 {
		return nil, fmt.Errorf("MAX_TEXT_LENGTH must be > 0 (got %d)", cfg.MaxTextLength)
	}
	if cfg.MaxBatchSize <= 0 {
		return nil, fmt.Errorf("MAX_BATCH_SIZE must be > 0 (got %d)", cfg.MaxBatchSize)
	}
	if cfg.RequestTimeout <= 0 || cfg.AnalysisTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, analysis=%s)",
			cfg.RequestTimeout, cfg.AnalysisTimeout)
	}
	if cfg.PositiveThreshold <= cfg.NegativeThreshold {
		return nil, fmt.Errorf("SENTIMENT_POSITIVE_THRESHOLD (%f) must be greater than SENTIMENT_NEGATIVE_THRESHOLD (%f)",
			cfg.PositiveThreshold, cfg.NegativeThreshold)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func parseListOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
