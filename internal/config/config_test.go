package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/remindme/internal/common"
	"github.com/Veraticus/remindme/internal/llm"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Equal(t, common.FormatConsole, s.LogFormat)
	assert.Equal(t, time.UTC, s.Location)
	assert.Equal(t, 3, s.DigestMaxItems)
	assert.Equal(t, 24*time.Hour, s.DueWithin)
	assert.False(t, s.LLMEnabled)
	assert.Equal(t, llm.ProviderAnthropic, s.LLM.Provider)
	assert.Equal(t, time.Hour, s.LLM.CacheTTL)
	assert.Equal(t, 30, s.LLM.RateLimit)
	assert.NotContains(t, s.SnapshotPath, "~")
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
timezone: Asia/Kolkata
snapshot:
  path: `+filepath.Join(dir, "data.yaml")+`
digest:
  max_items: 5
review:
  due_within_hours: 48
llm:
  enabled: true
  provider: openai
  api_key: sk-test
  model: gpt-test
  rate_limit: 10
  cache_ttl: 5m
`), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	s, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.Equal(t, common.FormatJSON, s.LogFormat)
	assert.Equal(t, "Asia/Kolkata", s.Location.String())
	assert.Equal(t, filepath.Join(dir, "data.yaml"), s.SnapshotPath)
	assert.Equal(t, 5, s.DigestMaxItems)
	assert.Equal(t, 48*time.Hour, s.DueWithin)
	assert.True(t, s.LLMEnabled)
	assert.Equal(t, llm.ProviderOpenAI, s.LLM.Provider)
	assert.Equal(t, "sk-test", s.LLM.APIKey)
	assert.Equal(t, "gpt-test", s.LLM.Model)
	assert.Equal(t, 10, s.LLM.RateLimit)
	assert.Equal(t, 5*time.Minute, s.LLM.CacheTTL)
}

func TestLoad_APIKeyFromEnvironment(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-key")
	v := viper.New()
	v.Set(KeyLLMEnabled, true)

	s, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, "env-key", s.LLM.APIKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{"log level", KeyLogLevel, "shout", common.ErrInvalidConfig},
		{"log format", KeyLogFormat, "xml", common.ErrInvalidConfig},
		{"digest size", KeyDigestMaxItems, 0, common.ErrInvalidConfig},
		{"due window", KeyDueWithinHours, -1, common.ErrInvalidConfig},
		{"provider", KeyLLMProvider, "gemini", common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(KeyLLMEnabled, true)
			v.Set(KeyLLMAPIKey, "k")
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	v := viper.New()
	v.Set(KeyLLMEnabled, true)
	v.Set(KeyLLMProvider, llm.ProviderOpenAI)

	_, err := Load(v)

	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestLoad_UnknownTimezoneFallsBack(t *testing.T) {
	v := viper.New()
	v.Set(KeyTimezone, "Mars/Olympus_Mons")

	s, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, time.UTC, s.Location)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("REMINDME_TEST_DIR", "/tmp/remindme")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data/snapshot.yaml", filepath.Join(home, "data/snapshot.yaml")},
		{"$REMINDME_TEST_DIR/snapshot.yaml", "/tmp/remindme/snapshot.yaml"},
		{"/abs/path.yaml", "/abs/path.yaml"},
		{"~other/file", "~other/file"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
