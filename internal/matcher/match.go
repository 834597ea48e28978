package matcher

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/remindme/internal/model"
)

// MinConfidence is the exclusive lower bound for a match to be reported.
const MinConfidence = 0.1

// Per-signal confidence weights.
const (
	taskDescriptionWeight = 0.2
	taskCategoryWeight    = 0.3
	taskLocationWeight    = 0.5
	taskTagWeight         = 0.4
	taskNotesWeight       = 0.1

	goalTitleWeight       = 0.3
	goalDescriptionWeight = 0.15
	goalCategoryWeight    = 0.3
)

// TaskMatch is a task judged relevant to an utterance.
type TaskMatch struct {
	Reason     string
	Task       model.Task
	Confidence float64
}

// GoalMatch is a goal judged relevant to an utterance.
type GoalMatch struct {
	Reason     string
	Goal       model.Goal
	Confidence float64
}

// MatchResult bundles everything the matcher derived from one utterance.
type MatchResult struct {
	Summary string
	Intent  Intent
	Tasks   []TaskMatch
	Goals   []GoalMatch
}

// Match runs intent detection, task and goal matching and response generation in one call.
func Match(input string, tasks []model.Task, tagsByTaskID map[int64][]model.Tag, goals []model.Goal) MatchResult {
	intent := DetectIntent(input)
	taskMatches := MatchTasks(input, tasks, tagsByTaskID)
	goalMatches := MatchGoals(input, goals)
	return MatchResult{
		Intent:  intent,
		Tasks:   taskMatches,
		Goals:   goalMatches,
		Summary: GenerateResponse(input, intent, taskMatches, goalMatches),
	}
}

// MatchTasks scores open tasks against input and returns those above MinConfidence,
// most relevant first. Completed and cancelled tasks are skipped.
func MatchTasks(input string, tasks []model.Task, tagsByTaskID map[int64][]model.Tag) []TaskMatch {
	lower := strings.ToLower(strings.TrimSpace(input))
	words := significantWords(lower)

	var matches []TaskMatch
	for _, task := range tasks {
		if task.Status.Closed() {
			continue
		}

		var confidence float64
		var reasons []string

		descWords := strings.Fields(strings.ToLower(task.Description))
		if n := countOverlap(words, descWords, true); n > 0 {
			confidence += float64(n) * taskDescriptionWeight
			reasons = append(reasons, "description match")
		}

		if task.Category != "" && strings.Contains(lower, strings.ToLower(task.Category)) {
			confidence += taskCategoryWeight
			reasons = append(reasons, "category: "+task.Category)
		}

		if task.LocationName != "" && strings.Contains(lower, strings.ToLower(task.LocationName)) {
			confidence += taskLocationWeight
			reasons = append(reasons, "location: "+task.LocationName)
		}

		for _, tag := range tagsByTaskID[task.ID] {
			if tag.Name != "" && strings.Contains(lower, strings.ToLower(tag.Name)) {
				confidence += taskTagWeight
				reasons = append(reasons, "tag: "+tag.Name)
			}
		}

		if task.Notes != "" {
			noteWords := strings.Fields(strings.ToLower(task.Notes))
			if n := countOverlap(words, noteWords, false); n > 0 {
				confidence += float64(n) * taskNotesWeight
				reasons = append(reasons, "notes match")
			}
		}

		confidence = clamp01(confidence)
		if confidence > MinConfidence {
			matches = append(matches, TaskMatch{
				Task:       task,
				Confidence: confidence,
				Reason:     strings.Join(reasons, ", "),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// MatchGoals scores open goals against input. Completed and abandoned goals are skipped.
func MatchGoals(input string, goals []model.Goal) []GoalMatch {
	lower := strings.ToLower(strings.TrimSpace(input))
	words := significantWords(lower)

	var matches []GoalMatch
	for _, goal := range goals {
		if goal.Status.Closed() {
			continue
		}

		var confidence float64
		var reasons []string

		titleWords := strings.Fields(strings.ToLower(goal.Title))
		if n := countOverlap(words, titleWords, true); n > 0 {
			confidence += float64(n) * goalTitleWeight
			reasons = append(reasons, "title match")
		}

		if goal.Description != "" {
			descWords := strings.Fields(strings.ToLower(goal.Description))
			if n := countOverlap(words, descWords, false); n > 0 {
				confidence += float64(n) * goalDescriptionWeight
				reasons = append(reasons, "description match")
			}
		}

		if goal.Category != "" && strings.Contains(lower, strings.ToLower(string(goal.Category))) {
			confidence += goalCategoryWeight
			reasons = append(reasons, "category: "+string(goal.Category))
		}

		confidence = clamp01(confidence)
		if confidence > MinConfidence {
			matches = append(matches, GoalMatch{
				Goal:       goal,
				Confidence: confidence,
				Reason:     strings.Join(reasons, ", "),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// significantWords splits lowered input into words longer than two characters.
func significantWords(lower string) []string {
	var words []string
	for _, w := range strings.Fields(lower) {
		if utf8.RuneCountInString(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

// countOverlap counts input words found inside some candidate word. With
// bidirectional set, a candidate found inside the input word also counts.
func countOverlap(inputWords, candidates []string, bidirectional bool) int {
	count := 0
	for _, word := range inputWords {
		for _, candidate := range candidates {
			if strings.Contains(candidate, word) || (bidirectional && strings.Contains(word, candidate)) {
				count++
				break
			}
		}
	}
	return count
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
