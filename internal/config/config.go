// Package config loads RemindME settings from viper.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // zone names resolve on hosts without a system database

	"github.com/spf13/viper"

	"github.com/Veraticus/remindme/internal/common"
	"github.com/Veraticus/remindme/internal/llm"
)

// Viper keys.
const (
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyTimezone       = "timezone"
	KeySnapshotPath   = "snapshot.path"
	KeyDigestMaxItems = "digest.max_items"
	KeyDueWithinHours = "review.due_within_hours"
	KeyLLMEnabled     = "llm.enabled"
	KeyLLMProvider    = "llm.provider"
	KeyLLMModel       = "llm.model"
	KeyLLMAPIKey      = "llm.api_key"
	KeyLLMBaseURL     = "llm.base_url"
	KeyLLMTemperature = "llm.temperature"
	KeyLLMMaxTokens   = "llm.max_tokens"
	KeyLLMMaxRetries  = "llm.max_retries"
	KeyLLMRetryDelay  = "llm.retry_delay"
	KeyLLMCacheTTL    = "llm.cache_ttl"
	KeyLLMCacheSize   = "llm.cache_size"
	KeyLLMRateLimit   = "llm.rate_limit"
	KeyLLMTimeout     = "llm.timeout"
)

// EnvPrefix is prepended to environment variable overrides, e.g. REMINDME_TIMEZONE.
const EnvPrefix = "REMINDME"

// Settings is the resolved application configuration.
type Settings struct {
	Location       *time.Location
	LogLevel       slog.Level
	LogFormat      string
	SnapshotPath   string
	LLM            llm.Config
	DigestMaxItems int
	DueWithin      time.Duration
	LLMEnabled     bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, common.FormatConsole)
	v.SetDefault(KeyTimezone, "UTC")
	v.SetDefault(KeySnapshotPath, "~/.config/remindme/snapshot.yaml")
	v.SetDefault(KeyDigestMaxItems, 3)
	v.SetDefault(KeyDueWithinHours, 24)
	v.SetDefault(KeyLLMEnabled, false)
	v.SetDefault(KeyLLMProvider, llm.ProviderAnthropic)
	v.SetDefault(KeyLLMTemperature, 0.7)
	v.SetDefault(KeyLLMMaxTokens, 512)
	v.SetDefault(KeyLLMMaxRetries, 3)
	v.SetDefault(KeyLLMRetryDelay, time.Second)
	v.SetDefault(KeyLLMCacheTTL, time.Hour)
	v.SetDefault(KeyLLMCacheSize, 128)
	v.SetDefault(KeyLLMRateLimit, 30)
	v.SetDefault(KeyLLMTimeout, 30*time.Second)
}

// Load resolves and validates settings from v. Defaults are applied first.
func Load(v *viper.Viper) (Settings, error) {
	SetDefaults(v)

	level, err := common.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Settings{}, err
	}

	format := strings.ToLower(v.GetString(KeyLogFormat))
	if format != common.FormatConsole && format != common.FormatJSON {
		return Settings{}, fmt.Errorf("%w: invalid log format %q", common.ErrInvalidConfig, format)
	}

	s := Settings{
		LogLevel:       level,
		LogFormat:      format,
		Location:       loadLocation(v.GetString(KeyTimezone)),
		SnapshotPath:   ExpandPath(v.GetString(KeySnapshotPath)),
		DigestMaxItems: v.GetInt(KeyDigestMaxItems),
		DueWithin:      time.Duration(v.GetInt(KeyDueWithinHours)) * time.Hour,
		LLMEnabled:     v.GetBool(KeyLLMEnabled),
	}
	if s.DigestMaxItems <= 0 {
		return Settings{}, fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyDigestMaxItems)
	}
	if s.DueWithin <= 0 {
		return Settings{}, fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyDueWithinHours)
	}

	s.LLM = llm.Config{
		Provider:    strings.ToLower(v.GetString(KeyLLMProvider)),
		Model:       v.GetString(KeyLLMModel),
		APIKey:      v.GetString(KeyLLMAPIKey),
		BaseURL:     v.GetString(KeyLLMBaseURL),
		Temperature: v.GetFloat64(KeyLLMTemperature),
		MaxTokens:   v.GetInt(KeyLLMMaxTokens),
		MaxRetries:  v.GetInt(KeyLLMMaxRetries),
		RetryDelay:  v.GetDuration(KeyLLMRetryDelay),
		CacheTTL:    v.GetDuration(KeyLLMCacheTTL),
		CacheSize:   v.GetInt(KeyLLMCacheSize),
		RateLimit:   v.GetInt(KeyLLMRateLimit),
		Timeout:     v.GetDuration(KeyLLMTimeout),
	}

	if !s.LLMEnabled {
		return s, nil
	}

	// Fall back to the provider's conventional environment variable.
	if s.LLM.APIKey == "" {
		switch s.LLM.Provider {
		case llm.ProviderAnthropic:
			s.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		case llm.ProviderOpenAI:
			s.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if err := s.LLM.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

func loadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown timezone, using UTC", "timezone", name, "error", err)
		return time.UTC
	}
	return loc
}

// ExpandPath expands a leading ~ and $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.ExpandEnv(path)
}
