package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Java"}, cfg.Search.Keywords)
	assert.Equal(t, "Remote", cfg.Search.Location)
	assert.Equal(t, 50, cfg.Search.Limit())
	assert.Equal(t, "Tailored_CV.pdf", cfg.Resume.OutputPath)
	assert.Equal(t, "applications.xlsx", cfg.Tracker.ExcelPath)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, ":8080", cfg.Dashboard.Port)
	assert.Equal(t, 30, cfg.Browser.ManualLoginWait)
	assert.Equal(t, "applications", cfg.Firebase.Collection)
	assert.Zero(t, cfg.Gemini.MaxRetries)
	assert.Zero(t, cfg.OpenRouter.MaxRetries)
	assert.Zero(t, cfg.Dashboard.RateLimit)
}

func TestParseRetriesAndRateLimit(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"gemini": {"max_retries": -2},
		"openrouter": {"max_retries": 2},
		"dashboard": {"rate_limit_per_minute": 5}
	}`))
	require.NoError(t, err)
	assert.Zero(t, cfg.Gemini.MaxRetries)
	assert.Equal(t, 2, cfg.OpenRouter.MaxRetries)
	assert.Equal(t, 5, cfg.Dashboard.RateLimit)
}

func TestParseZeroLimitIsKept(t *testing.T) {
	cfg, err := Parse([]byte(`{"search":{"daily_application_limit":0}}`))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Search.Limit())
}

func TestPlaceholdersAreUnset(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"linkedin": {"email": "me@example.com", "password": "pw", "session_cookie": "OPTIONAL_BUT_RECOMMENDED_LI_AT_COOKIE"},
		"gemini": {"api_key": "YOUR_GEMINI_API_KEY"}
	}`))
	require.NoError(t, err)

	assert.False(t, cfg.LinkedIn.HasSessionCookie())
	assert.True(t, cfg.LinkedIn.HasCredentials())
	assert.False(t, cfg.Gemini.Enabled())
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_NAME", "autoapply")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"gemini": {"api_key": "from-file"},
		"search": {"keywords": ["Go", " ", "Rust"], "location": "Berlin", "daily_application_limit": 3}
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, []string{"Go", "Rust"}, cfg.Search.Keywords)
	assert.Equal(t, "Berlin", cfg.Search.Location)
	assert.Equal(t, 3, cfg.Search.Limit())
}
