// README: Config loader with env defaults for HTTP, external API keys, and pipeline tuning.
package config

import (
	"os"
	"strconv"
	"time"
)

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

type EnrichConfig struct {
	Concurrency int
	CacheTTL    time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN is optional; an empty value disables the generation ledger.
		DSN string
	}
	Redis struct {
		// Addr is optional; an empty value disables the image-URL cache.
		Addr string
	}
	AI struct {
		GeminiKey string
		Model     string
	}
	Images struct {
		SerperKey string
	}
	Maps struct {
		// APIKey is optional; without it hotel search falls back to curated results.
		APIKey string
	}
	Weather struct {
		// APIKey is optional; without it the itinerary carries no forecast.
		APIKey string
	}
	Currency struct {
		// Rate converts the request budget into the settlement currency (INR).
		Rate float64
	}
	Retry  RetryConfig
	Enrich EnrichConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("VOYAGO_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("VOYAGO_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("VOYAGO_REDIS_ADDR", "")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.Model = envOrDefault("VOYAGO_GEMINI_MODEL", "gemini-2.0-flash")
	cfg.Images.SerperKey = envOrError("SERPER_API_KEY")
	cfg.Maps.APIKey = envOrDefault("MAPS_API_KEY", "")
	cfg.Weather.APIKey = envOrDefault("OPENWEATHER_API_KEY", "")
	cfg.Currency.Rate = envOrDefaultFloat("VOYAGO_EXCHANGE_RATE", 83.5)
	cfg.Retry.MaxAttempts = envOrDefaultInt("VOYAGO_RETRY_ATTEMPTS", 3)
	cfg.Retry.BaseDelay = time.Duration(envOrDefaultInt("VOYAGO_RETRY_BASE_MS", 800)) * time.Millisecond
	cfg.Enrich.Concurrency = envOrDefaultInt("VOYAGO_ENRICH_CONCURRENCY", 6)
	cfg.Enrich.CacheTTL = time.Duration(envOrDefaultInt("VOYAGO_IMAGE_CACHE_TTL_MIN", 24*60)) * time.Minute
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
