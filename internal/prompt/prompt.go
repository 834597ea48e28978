// Package prompt builds the text prompts sent to the optional generation
// collaborator and parses its structured replies.
package prompt

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Veraticus/remindme/internal/model"
)

// SystemContext opens every prompt.
const SystemContext = `You are RemindME, a helpful personal reminder and goal tracking assistant.
You help users manage tasks, track goals, and stay organized.
Be concise, friendly, and actionable in your responses.
Always respond in 2-3 sentences unless more detail is needed.`

const (
	shortDate   = "Jan 2"
	clockDay    = "3:04 PM, Monday"
	clockDayDay = "3:04 PM, Monday Jan 2"

	summaryTaskLimit    = 15
	contextTaskLimit    = 10
	contextGoalLimit    = 5
	enhanceTaskLimit    = 5
	enhanceGoalLimit    = 3
	historyMessageLimit = 200
)

// Turn is one message of recent conversation.
type Turn struct {
	Text     string
	FromUser bool
}

// Context is everything the contextual response prompt draws on.
type Context struct {
	Input           string
	CurrentLocation string
	Tasks           []model.Task
	Goals           []model.Goal
	History         []Turn
}

// IntentParsing asks the generator to classify input and extract its fields.
func IntentParsing(input string) string {
	return SystemContext + `

Classify the following user message into exactly one intent category.
Categories: ADD_TASK, ADD_GOAL, COMPLETE_TASK, CHECK_IN_GOAL, GET_SUMMARY, GOING_SOMEWHERE, STATUS_UPDATE, SNOOZE_TASK, LIST_TASKS, LIST_GOALS, GREETING, UNKNOWN

Also extract:
- description: the main task/goal description
- location: any mentioned location (or null)
- date: any mentioned date/time (or null)
- priority: urgent/high/medium/low (or null)
- category: fitness/travel/financial/learning/career/personal/health (or null)

User message: "` + input + `"

Respond in this exact format:
INTENT: <intent>
DESCRIPTION: <description>
LOCATION: <location or null>
DATE: <date or null>
PRIORITY: <priority or null>
CATEGORY: <category or null>`
}

var priorityTags = map[model.Priority]string{
	model.PriorityUrgent: "[URGENT]",
	model.PriorityHigh:   "[HIGH]",
	model.PriorityMedium: "[MED]",
	model.PriorityLow:    "[LOW]",
}

// TaskSummary asks for a short daily briefing over the first tasks.
func TaskSummary(tasks []model.Task, now time.Time) string {
	lines := make([]string, 0, min(len(tasks), summaryTaskLimit))
	for _, task := range tasks[:min(len(tasks), summaryTaskLimit)] {
		lines = append(lines, fmt.Sprintf("- %s %s%s%s",
			priorityTags[task.Priority], task.Description, atLocation(task), dueOn(task, now)))
	}

	return fmt.Sprintf(`%s

Summarize the following task list into a brief, organized daily briefing.
Group by priority and mention any urgent items first. Be concise.

Tasks (%d total):
%s

Provide a 3-4 sentence summary highlighting what needs attention today.`,
		SystemContext, len(tasks), strings.Join(lines, "\n"))
}

// GoalProgress asks for a motivational update on goal.
func GoalProgress(goal model.Goal, milestones []model.Milestone, now time.Time) string {
	var done, pending []string
	for _, m := range milestones {
		if m.IsCompleted {
			done = append(done, m.Title)
		} else {
			pending = append(pending, m.Title)
		}
	}

	var milestoneText strings.Builder
	if len(done) > 0 {
		fmt.Fprintf(&milestoneText, "Completed: %s\n", strings.Join(done, ", "))
	}
	if len(pending) > 0 {
		fmt.Fprintf(&milestoneText, "Pending: %s", strings.Join(pending, ", "))
	}

	timeline := "No target date"
	if goal.TargetDate != nil {
		if daysLeft := int(goal.TargetDate.Sub(now) / (24 * time.Hour)); daysLeft > 0 {
			timeline = fmt.Sprintf("%d days remaining", daysLeft)
		} else {
			timeline = "Past target date"
		}
	}

	return fmt.Sprintf(`%s

Provide a brief motivational progress update for this goal:

Goal: %s
Category: %s
Status: %s
Progress: %d%%
Streak: %d days (best: %d)
Timeline: %s
Milestones:
%s

Give an encouraging 2-3 sentence update with a specific next-step suggestion.`,
		SystemContext, goal.Title, goal.Category, goal.Status, int(goal.Progress),
		goal.CurrentStreak, goal.BestStreak, timeline, milestoneText.String())
}

// GoalMilestones asks for goal to be broken into ordered milestones, one per line.
func GoalMilestones(goal model.Goal) string {
	description := ""
	if goal.Description != "" {
		description = "Description: " + goal.Description
	}

	return fmt.Sprintf(`%s

Break down the following goal into 5-7 actionable milestones/steps.
Each step should be specific, measurable, and achievable.

Goal: %s
Category: %s
%s

List the milestones in order, one per line, starting with the easiest/first step.
Format: just the milestone title, nothing else.`,
		SystemContext, goal.Title, goal.Category, description)
}

// SmartSnooze asks for one snooze time suited to task.
func SmartSnooze(task model.Task, now time.Time) string {
	return fmt.Sprintf(`%s

Suggest the best snooze time for this reminder based on context:

Task: %s
Current time: %s
Priority: %s
%s
%s

Suggest ONE specific snooze time (e.g., "tomorrow at 9 AM", "in 2 hours", "Monday morning").
Explain why in one sentence.`,
		SystemContext, task.Description, now.Format(clockDay), task.Priority,
		labelled("Location: ", task.LocationName), labelled("Category: ", task.Category))
}

// Reflection asks for one reflective question about goal.
func Reflection(goal model.Goal, recentCheckIns, daysSinceStart int) string {
	return fmt.Sprintf(`%s

Generate a brief reflection prompt for the user about their goal progress:

Goal: %s
Days active: %d
Check-ins this week: %d
Current streak: %d
Progress: %d%%

Ask ONE thoughtful reflection question that helps the user think about their progress and next steps.
Keep it encouraging and specific to their goal.`,
		SystemContext, goal.Title, daysSinceStart, recentCheckIns, goal.CurrentStreak, int(goal.Progress))
}

// ContextualResponse asks for a conversational reply grounded in the user's
// tasks, goals, location and recent conversation.
func ContextualResponse(c Context, now time.Time) string {
	taskContext := "No active tasks."
	if len(c.Tasks) > 0 {
		lines := make([]string, 0, contextTaskLimit)
		for _, task := range c.Tasks[:min(len(c.Tasks), contextTaskLimit)] {
			category := ""
			if task.Category != "" {
				category = " (" + task.Category + ")"
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s%s%s%s",
				task.Priority, task.Description, category, atLocation(task), dueOn(task, now)))
		}
		taskContext = fmt.Sprintf("Active tasks (%d total):\n%s", len(c.Tasks), strings.Join(lines, "\n"))
	}

	goalContext := "No active goals."
	if len(c.Goals) > 0 {
		lines := make([]string, 0, contextGoalLimit)
		for _, goal := range c.Goals[:min(len(c.Goals), contextGoalLimit)] {
			streak := ""
			if goal.CurrentStreak > 0 {
				streak = fmt.Sprintf(" streak:%dd", goal.CurrentStreak)
			}
			lines = append(lines, fmt.Sprintf("- %s [%s] %d%%%s %s",
				goal.Title, goal.Category, int(goal.Progress), streak, goal.Status))
		}
		goalContext = fmt.Sprintf("Active goals (%d total):\n%s", len(c.Goals), strings.Join(lines, "\n"))
	}

	historyContext := ""
	if len(c.History) > 0 {
		lines := make([]string, len(c.History))
		for i, turn := range c.History {
			role := "Assistant"
			if turn.FromUser {
				role = "User"
			}
			lines[i] = role + ": " + clip(turn.Text, historyMessageLimit)
		}
		historyContext = "Recent conversation:\n" + strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`%s

User's current context:
Current time: %s
%s
%s
%s
%s

User says: "%s"

Respond helpfully. Reference specific tasks or goals when relevant. If the user asks a general question, answer it using their task/goal context. Consider the recent conversation for continuity. Be conversational and concise (2-4 sentences).`,
		SystemContext, now.Format(clockDayDay), labelled("User is currently in: ", c.CurrentLocation),
		taskContext, goalContext, historyContext, c.Input)
}

// ActionEnhancement asks for a one-line tip about an action just performed.
func ActionEnhancement(input, actionResult string, tasks []model.Task, goals []model.Goal) string {
	taskSummary := ""
	if len(tasks) > 0 {
		names := make([]string, 0, enhanceTaskLimit)
		for _, task := range tasks[:min(len(tasks), enhanceTaskLimit)] {
			names = append(names, task.Description)
		}
		taskSummary = "Other active tasks: " + strings.Join(names, ", ")
	}

	goalSummary := ""
	if len(goals) > 0 {
		names := make([]string, 0, enhanceGoalLimit)
		for _, goal := range goals[:min(len(goals), enhanceGoalLimit)] {
			names = append(names, goal.Title)
		}
		goalSummary = "Active goals: " + strings.Join(names, ", ")
	}

	return fmt.Sprintf(`%s

The user said: "%s"
I performed this action: %s
%s
%s

Add ONE brief helpful tip or observation (1 sentence max) related to this action. For example, relate it to their other tasks/goals, suggest a follow-up, or note timing. Be specific, not generic. If there's nothing useful to add, respond with just "ok".`,
		SystemContext, input, actionResult, taskSummary, goalSummary)
}

// DailyMotivation asks for a short morning message. topGoal may be nil.
func DailyMotivation(activeGoals, activeTasks, longestStreak int, topGoal *model.Goal) string {
	top := ""
	if topGoal != nil {
		top = fmt.Sprintf("- Top goal: %s at %d%%", topGoal.Title, int(topGoal.Progress))
	}

	return fmt.Sprintf(`%s

Generate a brief morning motivation message for a user with:
- %d pending tasks
- %d active goals
- Longest current streak: %d days
%s

Keep it to 1-2 sentences. Be specific and encouraging, not generic.`,
		SystemContext, activeTasks, activeGoals, longestStreak, top)
}

func atLocation(task model.Task) string {
	if task.LocationName == "" {
		return ""
	}
	return " @ " + task.LocationName
}

func dueOn(task model.Task, now time.Time) string {
	if task.DueDate == nil {
		return ""
	}
	return " due " + task.DueDate.In(now.Location()).Format(shortDate)
}

func labelled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}

// clip keeps the first n runes of s.
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
