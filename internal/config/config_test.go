package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NEWSDATA_API_KEY", "nd-key")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "https://newsdata.io/api/1/news", cfg.NewsdataBaseURL)
	require.Equal(t, 10, cfg.PageSize)
	require.Equal(t, 200, cfg.MaxArticles)
	require.Equal(t, 5, cfg.TranslateChunkSize)
	require.Equal(t, 200*time.Millisecond, cfg.TranslateChunkDelay)
	require.Equal(t, 500, cfg.TranslateContentLimit)
	require.Equal(t, "en", cfg.DefaultLanguage)
	require.Equal(t, 5*time.Minute, cfg.CacheTTL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, 0, cfg.MaxGeminiRequests)
	require.Empty(t, cfg.WeatherCity, "empty city defers to the language table")
	require.False(t, cfg.Debug)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NEWSDATA_API_KEY", "nd-key")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("NEWS_PAGE_SIZE", "25")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("DEFAULT_LANGUAGE", "es")
	t.Setenv("WEATHER_CITY", "Madrid")
	t.Setenv("MAX_GEMINI_REQUESTS", "40")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 25, cfg.PageSize)
	require.Equal(t, 90*time.Second, cfg.CacheTTL)
	require.Equal(t, "es", cfg.DefaultLanguage)
	require.Equal(t, "Madrid", cfg.WeatherCity)
	require.Equal(t, 40, cfg.MaxGeminiRequests)
	require.True(t, cfg.Debug)
}

func TestLoadInvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("NEWSDATA_API_KEY", "nd-key")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("NEWS_PAGE_SIZE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10, cfg.PageSize)
}

func TestLoadMissingNewsdataKey(t *testing.T) {
	t.Setenv("NEWSDATA_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "NEWSDATA_API_KEY")
}

func TestLoadMissingGeminiKey(t *testing.T) {
	t.Setenv("NEWSDATA_API_KEY", "nd-key")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "GEMINI_API_KEY")
}
