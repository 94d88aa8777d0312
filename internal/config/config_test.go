package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.GeminiAPIKey)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/planner")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/planner", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoadPortOutOfRange(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestRequireDatabase(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.RequireDatabase())

	cfg.DatabaseURL = "postgres://localhost/planner"
	assert.NoError(t, cfg.RequireDatabase())
}

func TestRequireGemini(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.RequireGemini())

	cfg.GeminiAPIKey = "test-key"
	assert.NoError(t, cfg.RequireGemini())
}
