package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ytsum/internal/config"
	"ytsum/pkg/serrors"

	"github.com/stretchr/testify/require"
)

var anthropicEnv = []string{ //nolint: gochecknoglobals
	"ANTHROPIC_AUTH_TOKEN",
	"ANTHROPIC_BASE_URL",
	"ANTHROPIC_DEFAULT_SONNET_MODEL",
	"ANTHROPIC_MAX_TOKENS",
	"HTTP_ADDR",
	"TRANSCRIPT_LANGUAGE",
	config.SettingsFileEnv,
}

// clearEnv unsets keys for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range anthropicEnv {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, "missing.yml"), filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	require.False(t, cfg.Database.Enabled)
	require.Equal(t, "en", cfg.Transcript.Language)
	require.Equal(t, 30*time.Second, cfg.Transcript.Timeout)
	require.Equal(t, "https://api.anthropic.com", cfg.Anthropic.BaseURL)
	require.Equal(t, "claude-sonnet-4-5", cfg.Anthropic.Model)
	require.Equal(t, 1024, cfg.Anthropic.MaxTokens)
	require.Empty(t, cfg.Anthropic.AuthToken)
	require.ErrorIs(t, cfg.Anthropic.Validate(), serrors.ErrBadRequest)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yml", `
environment: production
http:
  addr: ":9090"
transcript:
  language: de
`)
	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := config.Load(path, filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
	require.Equal(t, "de", cfg.Transcript.Language)
}

func TestLoad_SettingsPrecedence(t *testing.T) {
	clearEnv(t)
	settings := writeFile(t, "settings.json", `{
		"model": "opus",
		"env": {
			"ANTHROPIC_AUTH_TOKEN": "from-settings",
			"ANTHROPIC_BASE_URL": "https://proxy.example",
			"ANTHROPIC_DEFAULT_SONNET_MODEL": "settings-model",
			"UNRELATED": "x"
		}
	}`)

	cfg, err := config.Load("", settings)
	require.NoError(t, err)
	require.Equal(t, "from-settings", cfg.Anthropic.AuthToken)
	require.Equal(t, "https://proxy.example", cfg.Anthropic.BaseURL)
	require.Equal(t, "settings-model", cfg.Anthropic.Model)
	require.NoError(t, cfg.Anthropic.Validate())

	// the environment wins over the settings file
	t.Setenv("ANTHROPIC_AUTH_TOKEN", "from-env")
	cfg, err = config.Load("", settings)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Anthropic.AuthToken)
	require.Equal(t, "https://proxy.example", cfg.Anthropic.BaseURL)
}

func TestLoad_SettingsFileEnv(t *testing.T) {
	clearEnv(t)
	settings := writeFile(t, "custom.json", `{"env":{"ANTHROPIC_AUTH_TOKEN":"tok"}}`)
	t.Setenv(config.SettingsFileEnv, settings)

	require.Equal(t, settings, config.DefaultSettingsPath())

	cfg, err := config.Load("", "")
	require.NoError(t, err)
	require.Equal(t, "tok", cfg.Anthropic.AuthToken)
	require.Equal(t, "claude-sonnet-4-5", cfg.Anthropic.Model)
}

func TestLoad_MalformedSettings(t *testing.T) {
	clearEnv(t)
	settings := writeFile(t, "settings.json", `{"env": [}`)

	_, err := config.Load("", settings)
	require.Error(t, err)
}
