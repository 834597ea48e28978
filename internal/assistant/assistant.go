// Package assistant composes the parser, matcher, urgency and chain engines into
// conversational responses and a daily digest. A text generator can optionally
// rewrite responses; without one every answer is produced locally.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/remindme/internal/matcher"
	"github.com/Veraticus/remindme/internal/model"
	"github.com/Veraticus/remindme/internal/parser"
	"github.com/Veraticus/remindme/internal/prompt"
	"github.com/Veraticus/remindme/internal/service"
	"github.com/Veraticus/remindme/internal/urgency"
)

const (
	localConfidence     = 0.6
	generatorConfidence = 0.85

	maxSuggestedActions = 3
	actionLabelLimit    = 30
)

// ActionType names a follow-up the host can offer.
type ActionType string

// Follow-up action types.
const (
	ActionCompleteTask ActionType = "COMPLETE_TASK"
	ActionSnoozeTask   ActionType = "SNOOZE_TASK"
	ActionCheckInGoal  ActionType = "CHECK_IN_GOAL"
	ActionAddMilestone ActionType = "ADD_MILESTONE"
	ActionViewSummary  ActionType = "VIEW_SUMMARY"
	ActionNavigate     ActionType = "NAVIGATE"
)

// SuggestedAction is a one-tap follow-up. Payload carries a task or goal id,
// or a screen name for ActionNavigate.
type SuggestedAction struct {
	Label   string
	Type    ActionType
	Payload string
}

// Request is one user utterance plus the state it should be answered against.
type Request struct {
	Now             time.Time
	TagsByTaskID    map[int64][]model.Tag
	Input           string
	CurrentLocation string
	Tasks           []model.Task
	Goals           []model.Goal
	History         []prompt.Turn
}

// IntelligentResponse is the assistant's answer to a Request.
type IntelligentResponse struct {
	Text             string
	Intent           matcher.Intent
	Parsed           parser.ParsedTask
	Tasks            []matcher.TaskMatch
	Goals            []matcher.GoalMatch
	SuggestedActions []SuggestedAction
	Confidence       float64
	UsedGenerator    bool
}

// Config holds tunables for the assistant.
type Config struct {
	DigestMaxItems int
	DueWithin      time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DigestMaxItems: 3,
		DueWithin:      urgency.DefaultDueWithin,
	}
}

// Assistant answers utterances. It is safe for concurrent use when its
// generator is.
type Assistant struct {
	generator service.Generator
	logger    *slog.Logger
	config    Config
}

// New creates an assistant. generator may be nil.
func New(generator service.Generator, logger *slog.Logger) *Assistant {
	return NewWithConfig(generator, logger, DefaultConfig())
}

// NewWithConfig creates an assistant with custom configuration. Non-positive
// values fall back to the defaults.
func NewWithConfig(generator service.Generator, logger *slog.Logger, config Config) *Assistant {
	defaults := DefaultConfig()
	if config.DigestMaxItems <= 0 {
		config.DigestMaxItems = defaults.DigestMaxItems
	}
	if config.DueWithin <= 0 {
		config.DueWithin = defaults.DueWithin
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{
		generator: generator,
		logger:    logger,
		config:    config,
	}
}

// HasGenerator reports whether responses may be enhanced.
func (a *Assistant) HasGenerator() bool {
	return a.generator != nil
}

// Respond detects intent, matches tasks and goals, and builds a reply with
// suggested follow-ups. Generator failures are logged and never surface.
func (a *Assistant) Respond(ctx context.Context, req Request) IntelligentResponse {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	result := matcher.Match(req.Input, req.Tasks, req.TagsByTaskID, req.Goals)
	parsed := parser.Parse(req.Input, now)

	text := result.Summary
	switch result.Intent {
	case matcher.IntentAddTask:
		text = taskAddedText(parsed)
	case matcher.IntentAddGoal:
		text = goalCreatedText(parsed)
	}

	resp := IntelligentResponse{
		Text:             text,
		Intent:           result.Intent,
		Parsed:           parsed,
		Tasks:            result.Tasks,
		Goals:            result.Goals,
		SuggestedActions: suggestActions(result.Intent, parsed, req.Tasks, req.Goals),
		Confidence:       localConfidence,
	}

	a.logger.Debug("Matched utterance",
		"intent", result.Intent,
		"tasks", len(result.Tasks),
		"goals", len(result.Goals))

	var p string
	switch result.Intent {
	case matcher.IntentAddTask, matcher.IntentAddGoal, matcher.IntentCompleteTask, matcher.IntentCheckInGoal:
		p = prompt.ActionEnhancement(req.Input, text, req.Tasks, req.Goals)
	default:
		p = prompt.ContextualResponse(prompt.Context{
			Input:           req.Input,
			CurrentLocation: req.CurrentLocation,
			Tasks:           req.Tasks,
			Goals:           req.Goals,
			History:         req.History,
		}, now)
	}

	if enhanced, ok := a.enhance(ctx, "respond", p); ok {
		resp.Text = enhanced
		resp.Confidence = generatorConfidence
		resp.UsedGenerator = true
	}
	return resp
}

// enhance runs prompt through the generator. ok is false when there is no
// generator, it failed, or it produced only whitespace.
func (a *Assistant) enhance(ctx context.Context, purpose, p string) (string, bool) {
	if a.generator == nil {
		return "", false
	}

	text, err := a.generator.Generate(ctx, p)
	if err != nil {
		a.logger.Warn("Generation unavailable, using local response", "purpose", purpose, "error", err)
		return "", false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		a.logger.Warn("Generator returned no text, using local response", "purpose", purpose)
		return "", false
	}
	return text, true
}

func taskAddedText(parsed parser.ParsedTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Task added: \"%s\"\n", parsed.Description)
	if len(parsed.Tags) > 0 {
		fmt.Fprintf(&b, "🏷️ Tags: %s\n", strings.Join(parsed.TagNames(), ", "))
	}
	if parsed.LocationName != "" {
		fmt.Fprintf(&b, "📍 Location trigger: %s\n", parsed.LocationName)
	}
	if parsed.DueDate != nil {
		b.WriteString("📅 Due date set\n")
	}
	b.WriteString("\nI'll remind you at the right time!")
	return b.String()
}

func goalCreatedText(parsed parser.ParsedTask) string {
	return fmt.Sprintf("🎯 Goal created: \"%s\"\nCategory: %s\n\n"+
		"You can add milestones to break this down into steps. I'll check in with you regularly on your progress!",
		parsed.Description, model.GoalCategoryFor(parsed.GoalCategory).Title())
}

func suggestActions(intent matcher.Intent, parsed parser.ParsedTask, tasks []model.Task, goals []model.Goal) []SuggestedAction {
	var actions []SuggestedAction

	switch intent {
	case matcher.IntentAddTask:
		actions = append(actions, SuggestedAction{Label: "View Tasks", Type: ActionNavigate, Payload: "tasks"})
	case matcher.IntentAddGoal:
		actions = append(actions,
			SuggestedAction{Label: "View Goals", Type: ActionNavigate, Payload: "goals"},
			SuggestedAction{Label: "Add Milestones", Type: ActionAddMilestone})
	case matcher.IntentGetSummary:
		for _, task := range tasks {
			if task.Priority == model.PriorityUrgent && !task.Status.Closed() {
				actions = append(actions, SuggestedAction{
					Label:   "Complete: " + truncate(task.Description, actionLabelLimit),
					Type:    ActionCompleteTask,
					Payload: fmt.Sprint(task.ID),
				})
				break
			}
		}
		for _, goal := range goals {
			if goal.Status == model.GoalInProgress {
				actions = append(actions, SuggestedAction{
					Label:   "Check in: " + truncate(goal.Title, actionLabelLimit),
					Type:    ActionCheckInGoal,
					Payload: fmt.Sprint(goal.ID),
				})
				break
			}
		}
	case matcher.IntentGoingSomewhere:
		if parsed.LocationName != "" {
			actions = append(actions, SuggestedAction{Label: "View Tasks", Type: ActionNavigate, Payload: "tasks"})
		}
	default:
		if len(tasks) > 3 {
			actions = append(actions, SuggestedAction{Label: "View Summary", Type: ActionViewSummary})
		}
	}

	if len(actions) > maxSuggestedActions {
		actions = actions[:maxSuggestedActions]
	}
	return actions
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
