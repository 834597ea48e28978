package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/Veraticus/remindme/internal/common"
)

// Generator wraps a Client with a response cache, request pacing and retries.
// It is safe for concurrent use.
type Generator struct {
	client  Client
	cache   *expirable.LRU[string, string]
	limiter *rate.Limiter
	logger  *slog.Logger
	retry   common.RetryOptions
}

// NewGenerator wraps client using the cache, rate and retry settings from cfg.
func NewGenerator(client Client, cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = 128
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	perMinute := cfg.RateLimit
	if perMinute <= 0 {
		perMinute = 30
	}

	return &Generator{
		client:  client,
		cache:   expirable.NewLRU[string, string](size, nil, ttl),
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), max(1, perMinute/10)),
		logger:  logger,
		retry: common.RetryOptions{
			Logger:       logger,
			MaxAttempts:  cfg.MaxRetries,
			InitialDelay: cfg.RetryDelay,
		},
	}
}

// Generate returns generated text for prompt, serving repeats from the cache.
// Empty output is reported as common.ErrEmptyGeneration.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	key := promptKey(prompt)
	if text, ok := g.cache.Get(key); ok {
		g.logger.Debug("generation cache hit", "key", key[:12])
		return text, nil
	}

	var text string
	err := common.WithRetry(ctx, func() error {
		if err := g.limiter.Wait(ctx); err != nil {
			return common.Permanent(fmt.Errorf("rate limiter: %w", err))
		}
		out, err := g.client.Generate(ctx, prompt)
		if err != nil {
			return err
		}
		if out == "" {
			return common.Permanent(common.ErrEmptyGeneration)
		}
		text = out
		return nil
	}, g.retry)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	g.cache.Add(key, text)
	return text, nil
}

// CacheLen reports how many responses are cached.
func (g *Generator) CacheLen() int {
	return g.cache.Len()
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
