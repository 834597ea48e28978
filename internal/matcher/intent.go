// Package matcher interprets utterances against the user's existing tasks and goals:
// it detects intent, ranks relevant tasks and goals, and renders canned replies.
package matcher

import "strings"

// Intent is what the user wants to do with an utterance.
type Intent string

// Intent constants.
const (
	IntentAddTask        Intent = "ADD_TASK"
	IntentAddGoal        Intent = "ADD_GOAL"
	IntentQueryTasks     Intent = "QUERY_TASKS"
	IntentQueryGoals     Intent = "QUERY_GOALS"
	IntentGoingSomewhere Intent = "GOING_SOMEWHERE"
	IntentStatusUpdate   Intent = "STATUS_UPDATE"
	IntentCompleteTask   Intent = "COMPLETE_TASK"
	IntentCompleteGoal   Intent = "COMPLETE_GOAL"
	IntentSnoozeTask     Intent = "SNOOZE_TASK"
	IntentGetSummary     Intent = "GET_SUMMARY"
	IntentCheckInGoal    Intent = "CHECK_IN_GOAL"
	IntentUnknown        Intent = "UNKNOWN"
)

// Intents lists every intent in declaration order.
var Intents = []Intent{
	IntentAddTask, IntentAddGoal, IntentQueryTasks, IntentQueryGoals,
	IntentGoingSomewhere, IntentStatusUpdate, IntentCompleteTask, IntentCompleteGoal,
	IntentSnoozeTask, IntentGetSummary, IntentCheckInGoal, IntentUnknown,
}

// Valid reports whether i is a known intent.
func (i Intent) Valid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// IntentPhrases binds an intent to the phrases that signal it.
type IntentPhrases struct {
	Intent  Intent
	Phrases []string
}

// intentTable is evaluated in order; on equal scores the earlier intent wins.
var intentTable = []IntentPhrases{
	{IntentAddTask, []string{
		"remind me", "add task", "add reminder", "create task", "remember to",
		"don't forget", "i need to", "i have to", "i should", "note that",
		"remind about",
	}},
	{IntentAddGoal, []string{
		"start a", "begin a", "my goal", "i want to achieve", "plan for",
		"set goal", "new goal", "i aim to", "target to", "resolution",
	}},
	{IntentGoingSomewhere, []string{
		"i am going to", "i'm going to", "going to", "heading to",
		"traveling to", "travelling to", "visiting", "on my way to",
		"i am at", "i'm at", "i am in", "i'm in", "reached",
	}},
	{IntentStatusUpdate, []string{
		"i have faced", "there is an issue", "problem with", "issue with",
		"noticed that", "something wrong", "update about", "regarding my",
		"about my",
	}},
	{IntentCompleteTask, []string{
		"done with", "completed", "finished", "i did", "mark as done",
		"task done", "got it done", "bought", "purchased",
	}},
	{IntentGetSummary, []string{
		"summary", "summarize", "what do i", "what should i", "what's pending",
		"show me", "list my", "what are my", "any reminders", "anything i need",
		"what tasks", "what goals", "how am i doing", "progress",
	}},
	{IntentCheckInGoal, []string{
		"check in", "update progress", "i worked on", "i exercised",
		"i studied", "i practiced", "goal update", "progress update",
	}},
}

// IntentTable returns a copy of the phrase table used by DetectIntent.
func IntentTable() []IntentPhrases {
	out := make([]IntentPhrases, len(intentTable))
	for i, entry := range intentTable {
		out[i] = IntentPhrases{Intent: entry.Intent, Phrases: append([]string(nil), entry.Phrases...)}
	}
	return out
}

// IntentScores returns the phrase score of every intent in the table.
func IntentScores(input string) map[Intent]int {
	lower := strings.ToLower(strings.TrimSpace(input))
	scores := make(map[Intent]int, len(intentTable))
	for _, entry := range intentTable {
		scores[entry.Intent] = scorePhrases(lower, entry.Phrases)
	}
	return scores
}

// DetectIntent picks the intent whose phrases score highest. Each phrase found in the
// input scores its word count. Ties keep the earlier intent; no hits yields UNKNOWN.
func DetectIntent(input string) Intent {
	lower := strings.ToLower(strings.TrimSpace(input))

	best := IntentUnknown
	bestScore := 0
	for _, entry := range intentTable {
		score := scorePhrases(lower, entry.Phrases)
		if score > bestScore {
			bestScore = score
			best = entry.Intent
		}
	}
	return best
}

func scorePhrases(lower string, phrases []string) int {
	score := 0
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			score += len(strings.Split(phrase, " "))
		}
	}
	return score
}
