package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/remindme/internal/assistant"
	"github.com/Veraticus/remindme/internal/common"
	"github.com/Veraticus/remindme/internal/llm"
	"github.com/Veraticus/remindme/internal/service"
	"github.com/Veraticus/remindme/internal/snapshot"
)

// loadStore opens the configured snapshot.
func loadStore() (service.Store, error) {
	if settings.SnapshotPath == "" {
		return nil, common.NewUserError("no snapshot configured; pass --snapshot or set snapshot.path", common.ErrMissingConfig)
	}
	s, err := snapshot.Load(settings.SnapshotPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded snapshot", "path", settings.SnapshotPath, "tasks", len(s.Tasks), "goals", len(s.Goals))
	return s, nil
}

// newAssistant builds the assistant, wiring a generator when one is enabled.
// A generator that cannot be built only disables enhancement.
func newAssistant() *assistant.Assistant {
	logger := slog.Default()
	cfg := assistant.Config{
		DigestMaxItems: settings.DigestMaxItems,
		DueWithin:      settings.DueWithin,
	}

	if !settings.LLMEnabled {
		return assistant.NewWithConfig(nil, logger, cfg)
	}

	client, err := llm.NewClient(settings.LLM)
	if err != nil {
		slog.Warn("Generation disabled", "error", err)
		return assistant.NewWithConfig(nil, logger, cfg)
	}
	return assistant.NewWithConfig(llm.NewGenerator(client, settings.LLM, logger), logger, cfg)
}

func joinArgs(args []string) (string, error) {
	input := strings.TrimSpace(strings.Join(args, " "))
	if input == "" {
		return "", fmt.Errorf("nothing to read: %w", common.ErrInvalidData)
	}
	return input, nil
}
