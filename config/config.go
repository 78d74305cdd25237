package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Synthetic series generation
	SeriesLen int
	Seed      int64

	// Rolling windows (comma-separated lengths, e.g. "14,20,50")
	Windows string

	// Batch pricing
	BatchSize int
	Workers   int

	// Infrastructure
	MetricsAddr string
	LogLevel    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		SeriesLen: getEnvInt("BENCH_SERIES_LEN", 100_000),
		Seed:      int64(getEnvInt("BENCH_SEED", 1)),

		// Default windows: RSI-style 14, monthly 20, quarterly 50
		Windows: getEnv("BENCH_WINDOWS", "14,20,50"),

		BatchSize: getEnvInt("BENCH_BATCH_SIZE", 10_000),
		Workers:   getEnvInt("BENCH_WORKERS", 0),

		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// ParseWindows parses the Windows string into a slice of window lengths.
func (c *Config) ParseWindows() []int {
	parts := strings.Split(c.Windows, ",")
	windows := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			log.Printf("[config] skipping invalid window value: %q", p)
			continue
		}
		windows = append(windows, n)
	}
	return windows
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid int for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
