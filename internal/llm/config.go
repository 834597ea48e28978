package llm

import (
	"fmt"
	"time"

	"github.com/Veraticus/remindme/internal/common"
)

// Supported providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Config configures a generation client and the Generator around it.
type Config struct {
	Provider     string
	APIKey       string
	Model        string
	BaseURL      string
	SystemPrompt string
	MaxRetries   int
	RetryDelay   time.Duration
	CacheTTL     time.Duration
	CacheSize    int
	RateLimit    int // requests per minute
	Timeout      time.Duration
	Temperature  float64
	MaxTokens    int
}

// Validate checks that the provider is known and has credentials.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI:
	default:
		return fmt.Errorf("%w: unsupported LLM provider %q", common.ErrInvalidConfig, c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: %s API key", common.ErrMissingConfig, c.Provider)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: temperature %.2f out of range", common.ErrInvalidConfig, c.Temperature)
	}
	return nil
}
