package assistant

import (
	"context"
	"time"

	"github.com/Veraticus/remindme/internal/model"
	"github.com/Veraticus/remindme/internal/prompt"
)

// The helpers below return ok=false when no generator is configured or it
// produced nothing usable. Callers fall back to their own local rendering.

// SummarizeTasks asks for a short prioritised briefing of tasks.
func (a *Assistant) SummarizeTasks(ctx context.Context, tasks []model.Task, now time.Time) (string, bool) {
	return a.enhance(ctx, "task summary", prompt.TaskSummary(tasks, now))
}

// GoalProgress asks for an encouraging progress report on goal.
func (a *Assistant) GoalProgress(ctx context.Context, goal model.Goal, milestones []model.Milestone, now time.Time) (string, bool) {
	return a.enhance(ctx, "goal progress", prompt.GoalProgress(goal, milestones, now))
}

// SuggestMilestones asks for milestone titles for goal.
func (a *Assistant) SuggestMilestones(ctx context.Context, goal model.Goal) ([]string, bool) {
	text, ok := a.enhance(ctx, "milestones", prompt.GoalMilestones(goal))
	if !ok {
		return nil, false
	}
	lines := prompt.CleanMilestoneLines(text)
	if len(lines) == 0 {
		return nil, false
	}
	return lines, true
}

// SuggestSnooze asks when task would be better resurfaced.
func (a *Assistant) SuggestSnooze(ctx context.Context, task model.Task, now time.Time) (string, bool) {
	return a.enhance(ctx, "snooze", prompt.SmartSnooze(task, now))
}

// Reflect asks for a reflection on the user's consistency with goal.
func (a *Assistant) Reflect(ctx context.Context, goal model.Goal, now time.Time) (string, bool) {
	daysSinceStart := int(now.Sub(goal.CreatedAt) / (24 * time.Hour))
	return a.enhance(ctx, "reflection", prompt.Reflection(goal, goal.CurrentStreak, daysSinceStart))
}

// DailyMotivation asks for a morning message built around the goal with the
// longest running streak.
func (a *Assistant) DailyMotivation(ctx context.Context, goals []model.Goal, tasks []model.Task) (string, bool) {
	var top *model.Goal
	for i := range goals {
		if top == nil || goals[i].CurrentStreak > top.CurrentStreak {
			top = &goals[i]
		}
	}
	longest := 0
	if top != nil {
		longest = top.CurrentStreak
	}
	return a.enhance(ctx, "motivation", prompt.DailyMotivation(len(goals), len(tasks), longest, top))
}

// ParseIntent asks the generator to classify input and extract its fields.
func (a *Assistant) ParseIntent(ctx context.Context, input string) (prompt.ParsedIntent, bool) {
	text, ok := a.enhance(ctx, "intent", prompt.IntentParsing(input))
	if !ok {
		return prompt.ParsedIntent{}, false
	}
	parsed := prompt.ParseIntentResponse(text)
	if parsed.Intent == "" {
		return prompt.ParsedIntent{}, false
	}
	return parsed, true
}
