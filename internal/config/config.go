package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/subosito/gotenv"
)

type Config struct {
	// API keys
	NewsdataAPIKey string
	GeminiAPIKey   string
	WeatherAPIKey  string

	// Aggregator settings
	NewsdataBaseURL string
	PageSize        int // items requested per aggregator call
	MaxArticles     int // cap on the merged, deduplicated list

	// Translation settings
	TranslateChunkSize    int           // articles per Gemini translation request
	TranslateChunkDelay   time.Duration // pause between chunks
	TranslateContentLimit int           // content runes sent for translation

	// Language settings
	DefaultLanguage string
	LanguagesPath   string

	// Cache settings
	CacheTTL time.Duration

	// App settings
	RequestTimeout    time.Duration
	MaxGeminiRequests int    // daily cap on Gemini calls (0 = unlimited)
	WeatherCity       string // empty means the display language's default city
	Debug             bool
}

// LoadEnv pulls a local .env file into the environment if one exists.
func LoadEnv() {
	if err := gotenv.Load(); err != nil {
		slog.Debug("no .env file found, using OS environment")
	}
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		NewsdataBaseURL:       "https://newsdata.io/api/1/news",
		PageSize:              10,
		MaxArticles:           200,
		TranslateChunkSize:    5,
		TranslateChunkDelay:   200 * time.Millisecond,
		TranslateContentLimit: 500,
		DefaultLanguage:       "en",
		LanguagesPath:         "configs/languages.yaml",
		CacheTTL:              5 * time.Minute,
		RequestTimeout:        30 * time.Second,
	}

	// Load from environment
	cfg.NewsdataAPIKey = os.Getenv("NEWSDATA_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")

	if base := os.Getenv("NEWSDATA_BASE_URL"); base != "" {
		cfg.NewsdataBaseURL = base
	}
	if path := os.Getenv("LANGUAGES_PATH"); path != "" {
		cfg.LanguagesPath = path
	}
	if city := os.Getenv("WEATHER_CITY"); city != "" {
		cfg.WeatherCity = city
	}

	cfg.PageSize = getEnvIntOrDefault("NEWS_PAGE_SIZE", cfg.PageSize)
	cfg.MaxArticles = getEnvIntOrDefault("NEWS_MAX_ARTICLES", cfg.MaxArticles)
	cfg.TranslateChunkSize = getEnvIntOrDefault("TRANSLATE_CHUNK_SIZE", cfg.TranslateChunkSize)
	cfg.TranslateContentLimit = getEnvIntOrDefault("TRANSLATE_CONTENT_LIMIT", cfg.TranslateContentLimit)
	cfg.MaxGeminiRequests = getEnvIntOrDefault("MAX_GEMINI_REQUESTS", cfg.MaxGeminiRequests)

	cfg.CacheTTL = getEnvDurationOrDefault("CACHE_TTL", cfg.CacheTTL)
	cfg.RequestTimeout = getEnvDurationOrDefault("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.TranslateChunkDelay = getEnvDurationOrDefault("TRANSLATE_CHUNK_DELAY", cfg.TranslateChunkDelay)

	if lang := os.Getenv("DEFAULT_LANGUAGE"); lang != "" {
		cfg.DefaultLanguage = lang
	}
	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue >= 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.NewsdataAPIKey == "" {
		return fmt.Errorf("NEWSDATA_API_KEY is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("NEWS_PAGE_SIZE must be positive")
	}
	if c.MaxArticles <= 0 {
		return fmt.Errorf("NEWS_MAX_ARTICLES must be positive")
	}
	if c.TranslateChunkSize <= 0 {
		return fmt.Errorf("TRANSLATE_CHUNK_SIZE must be positive")
	}
	return nil
}
