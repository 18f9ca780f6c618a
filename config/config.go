// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultRedisAddr = "localhost:6379"
	defaultOpTimeout = 5 * time.Second
	defaultTTL       = 5 * time.Minute
	defaultQueueName = "excel_processing_queue"
	defaultDataDir   = "data"
)

type Config struct {
	RedisAddr     string
	RedisUsername string
	RedisPassword string
	RedisDB       int

	// OpTimeout bounds each store call.
	OpTimeout time.Duration
	// DefaultTTL is the snapshot cache duration when callers don't pass one.
	DefaultTTL time.Duration
	// QueueName is the task list the dispatcher drains.
	QueueName string
	// DataDir holds the tabular source files.
	DataDir string
}

// Load reads a .env file when present (best-effort, never required) and then
// the environment. Missing variables fall back to defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		RedisAddr:     getenv("REDIS_ADDR", defaultRedisAddr),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		QueueName:     getenv("QUEUE_NAME", defaultQueueName),
		DataDir:       getenv("DATA_DIR", defaultDataDir),
		OpTimeout:     defaultOpTimeout,
		DefaultTTL:    defaultTTL,
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}
	if v := os.Getenv("STORE_OP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: STORE_OP_TIMEOUT: %w", err)
		}
		cfg.OpTimeout = d
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: CACHE_TTL: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("config: CACHE_TTL must be positive, got %s", d)
		}
		cfg.DefaultTTL = d
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
