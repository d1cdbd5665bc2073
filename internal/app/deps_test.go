package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-assistant/internal/assistant"
	"health-assistant/internal/config"
)

func testConfig(t *testing.T, environ map[string]string) config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(environ)
	require.NoError(t, err)
	return cfg
}

func TestNew(t *testing.T) {
	tests := []struct {
		name            string
		environ         map[string]string
		wantMissingCred bool
		wantErr         bool
	}{
		{
			name:    "gemini with key",
			environ: map[string]string{"GEMINI_API_KEY": "test-key"},
		},
		{
			name:    "openai with key",
			environ: map[string]string{"LLM_PROVIDER": "openai", "OPENAI_API_KEY": "sk-test"},
		},
		{
			name:            "gemini without key",
			environ:         map[string]string{},
			wantMissingCred: true,
		},
		{
			name:            "blank gemini key",
			environ:         map[string]string{"GEMINI_API_KEY": "   "},
			wantMissingCred: true,
		},
		{
			name:            "openai selected but only gemini key set",
			environ:         map[string]string{"LLM_PROVIDER": "openai", "GEMINI_API_KEY": "test-key"},
			wantMissingCred: true,
		},
		{
			name:    "unknown provider",
			environ: map[string]string{"LLM_PROVIDER": "anthropic", "GEMINI_API_KEY": "test-key"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, err := New(context.Background(), testConfig(t, tt.environ))

			switch {
			case tt.wantMissingCred:
				assert.ErrorIs(t, err, assistant.ErrMissingCredential)
				assert.Nil(t, deps.Assistant)
			case tt.wantErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, assistant.ErrMissingCredential)
			default:
				require.NoError(t, err)
				assert.NotNil(t, deps.Log)
				assert.NotNil(t, deps.Assistant)
			}
		})
	}
}

func TestNewMissingCredentialNamesVariable(t *testing.T) {
	_, err := New(context.Background(), testConfig(t, map[string]string{"LLM_PROVIDER": "openai"}))

	require.ErrorIs(t, err, assistant.ErrMissingCredential)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewPassesModelToBridge(t *testing.T) {
	deps, err := New(context.Background(), testConfig(t, map[string]string{
		"GEMINI_API_KEY": "test-key",
		"LLM_MODEL":      "models/gemini-2.5-flash",
	}))
	require.NoError(t, err)
	assert.Equal(t, "models/gemini-2.5-flash", deps.Assistant.Model())
}

func TestBuildModelLister(t *testing.T) {
	_, err := BuildModelLister(context.Background(), testConfig(t, map[string]string{
		"LLM_PROVIDER":   "openai",
		"OPENAI_API_KEY": "sk-test",
	}))
	assert.ErrorIs(t, err, assistant.ErrMissingCredential)

	lister, err := BuildModelLister(context.Background(), testConfig(t, map[string]string{
		"GEMINI_API_KEY": "test-key",
	}))
	require.NoError(t, err)
	assert.NotNil(t, lister)
}

func TestLoadConfigReportsParseError(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("LLM_TIMEOUT", "30")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLMTimeout")
	assert.NotContains(t, err.Error(), "'gt' tag")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HEALTH_ASSISTANT_DOTENV_TEST=from-file\n"), 0o600))

	t.Setenv("HEALTH_ASSISTANT_DOTENV_TEST", "")
	require.NoError(t, os.Unsetenv("HEALTH_ASSISTANT_DOTENV_TEST"))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("HEALTH_ASSISTANT_DOTENV_TEST"))
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HEALTH_ASSISTANT_DOTENV_TEST=from-file\n"), 0o600))

	t.Setenv("HEALTH_ASSISTANT_DOTENV_TEST", "from-process")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-process", os.Getenv("HEALTH_ASSISTANT_DOTENV_TEST"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "does-not-exist.env")))
}
