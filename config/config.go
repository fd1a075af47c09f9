package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// BatchPolicy controls what a multi-file request does when one file fails.
type BatchPolicy string

const (
	// PolicyFailFast stops at the first failing file and relays its error.
	PolicyFailFast BatchPolicy = "fail_fast"
	// PolicyCollectAll attempts every file and reports failures per entry.
	PolicyCollectAll BatchPolicy = "collect_all"
)

// ParseBatchPolicy maps a raw value onto a known policy.
func ParseBatchPolicy(value string) (BatchPolicy, bool) {
	switch BatchPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case PolicyFailFast:
		return PolicyFailFast, true
	case PolicyCollectAll:
		return PolicyCollectAll, true
	}
	return "", false
}

type Config struct {
	Port               string
	GinMode            string
	OutputDir          string
	RemoteEndpoint     string
	ModelName          string
	GenerationTimeout  time.Duration
	BatchPolicy        BatchPolicy
	CacheTTL           time.Duration
	MaxUploadBytes     int64
	PostgresDSN        string
	CORSAllowedOrigins []string
}

// GetConfig loads an optional .env file and then reads the environment.
func GetConfig() Config {
	_ = godotenv.Load()

	policy, ok := ParseBatchPolicy(getEnv("BATCH_POLICY", string(PolicyFailFast)))
	if !ok {
		policy = PolicyFailFast
	}

	return Config{
		Port:               getEnv("PORT", "9090"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		OutputDir:          getEnv("OUTPUT_DIR", "./result"),
		RemoteEndpoint:     getEnv("REMOTE_ENDPOINT", "http://ollama:11434/api/generate"),
		ModelName:          getEnv("MODEL_NAME", "qwen2.5-coder:3b"),
		GenerationTimeout:  getDuration("GENERATION_TIMEOUT", 120*time.Second),
		BatchPolicy:        policy,
		CacheTTL:           getDuration("GENERATION_CACHE_TTL", 0),
		MaxUploadBytes:     getInt64("MAX_UPLOAD_MB", 32) << 20,
		PostgresDSN:        getEnv("POSTGRES_DSN", ""),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
