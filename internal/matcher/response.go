package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// summaryLimit caps how many tasks or goals a summary lists.
const summaryLimit = 5

// starConfidence marks a listed task as a strong match.
const starConfidence = 0.5

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:going|heading|traveling|travelling|visiting)\s+(?:to\s+)?(.+?)(?:\s+now|\s+today|\s+tomorrow|\.|$)`),
	regexp.MustCompile(`(?i)(?:i am|i'm)\s+(?:in|at)\s+(.+?)(?:\s+now|\s+today|\.|$)`),
}

// ExtractLocation pulls the place the user is heading to or is at out of input.
func ExtractLocation(input string) (string, bool) {
	for _, pattern := range locationPatterns {
		if m := pattern.FindStringSubmatch(input); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// GenerateResponse renders the canned reply for an intent and its matches.
func GenerateResponse(input string, intent Intent, tasks []TaskMatch, goals []GoalMatch) string {
	switch intent {
	case IntentGoingSomewhere:
		return goingSomewhereResponse(input, tasks, goals)
	case IntentGetSummary:
		return summaryResponse(tasks, goals)
	case IntentStatusUpdate:
		if len(tasks) > 0 {
			return fmt.Sprintf("Got it! I've noted this update related to \"%s\". This will be included in the summary when relevant.",
				tasks[0].Task.Description)
		}
		return "Noted! I'll remember this information and bring it up when relevant."
	case IntentAddTask:
		return "✅ Task added! I'll remind you at the right time."
	case IntentAddGoal:
		return "🎯 Goal created! I'll help you track your progress."
	case IntentCompleteTask:
		if len(tasks) > 0 {
			return fmt.Sprintf("Great job! Marked \"%s\" as completed! 🎉", tasks[0].Task.Description)
		}
		return "Which task did you complete? Please be more specific."
	case IntentCheckInGoal:
		if len(goals) > 0 {
			goal := goals[0].Goal
			return fmt.Sprintf("Awesome! Checked in for \"%s\". Streak: %d days! 🔥", goal.Title, goal.CurrentStreak+1)
		}
		return "Which goal are you checking in for?"
	default:
		if len(tasks) > 0 || len(goals) > 0 {
			return summaryResponse(tasks, goals)
		}
		return "I understand. How can I help you with your tasks or goals?"
	}
}

func goingSomewhereResponse(input string, tasks []TaskMatch, goals []GoalMatch) string {
	location, found := ExtractLocation(input)
	if len(tasks) == 0 && len(goals) == 0 {
		if !found {
			location = "that location"
		}
		return fmt.Sprintf("No pending tasks or goals related to %s. Have a good trip!", location)
	}

	var b strings.Builder
	if found {
		fmt.Fprintf(&b, "Here's what you need to do for %s:\n\n", location)
	} else {
		b.WriteString("Here are related reminders:\n\n")
	}
	if len(tasks) > 0 {
		b.WriteString("📋 Tasks:\n")
		for i, m := range tasks {
			fmt.Fprintf(&b, "%d. %s", i+1, m.Task.Description)
			if m.Confidence >= starConfidence {
				b.WriteString(" ⭐")
			}
			b.WriteString("\n")
		}
	}
	if len(goals) > 0 {
		b.WriteString("\n🎯 Related Goals:\n")
		for i, m := range goals {
			fmt.Fprintf(&b, "%d. %s (%d%% done)\n", i+1, m.Goal.Title, int(m.Goal.Progress))
		}
	}
	return b.String()
}

func summaryResponse(tasks []TaskMatch, goals []GoalMatch) string {
	if len(tasks) == 0 && len(goals) == 0 {
		return "You're all caught up! No pending tasks or active goals."
	}

	var b strings.Builder
	b.WriteString("📊 Your Summary:\n\n")
	if len(tasks) > 0 {
		fmt.Fprintf(&b, "📋 %d relevant task(s):\n", len(tasks))
		for i, m := range tasks[:min(len(tasks), summaryLimit)] {
			fmt.Fprintf(&b, "%d. %s\n", i+1, m.Task.Description)
		}
		if len(tasks) > summaryLimit {
			fmt.Fprintf(&b, "...and %d more\n", len(tasks)-summaryLimit)
		}
	}
	if len(goals) > 0 {
		fmt.Fprintf(&b, "\n🎯 %d active goal(s):\n", len(goals))
		for i, m := range goals[:min(len(goals), summaryLimit)] {
			fmt.Fprintf(&b, "%d. %s - %d%% done\n", i+1, m.Goal.Title, int(m.Goal.Progress))
		}
	}
	return b.String()
}
