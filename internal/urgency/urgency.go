// Package urgency scores how pressing open tasks are and lets their priority
// drift with age and due-date proximity.
package urgency

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/remindme/internal/model"
)

const (
	day = 24 * time.Hour

	maxAgeBonus    = 0.3
	ageBonusWindow = 14.0 // days to reach maxAgeBonus
	snoozePenalty  = 0.05

	// DefaultDueWithin is the look-ahead used by DueSoon when callers have no preference.
	DefaultDueWithin = 24 * time.Hour
)

var basePriorityScore = map[model.Priority]float64{
	model.PriorityUrgent: 1.0,
	model.PriorityHigh:   0.75,
	model.PriorityMedium: 0.5,
	model.PriorityLow:    0.25,
}

// dueBonuses are checked in order; the first bound the remaining hours fit under wins.
var dueBonuses = []struct {
	hours float64
	bonus float64
}{
	{0, 0.4},
	{2, 0.35},
	{12, 0.25},
	{24, 0.15},
	{72, 0.05},
}

// priorityThresholds map a score back onto a priority, highest first.
var priorityThresholds = []struct {
	min      float64
	priority model.Priority
}{
	{0.85, model.PriorityUrgent},
	{0.65, model.PriorityHigh},
	{0.40, model.PriorityMedium},
}

// DecayResult explains how a task's priority moved once urgency is taken into account.
type DecayResult struct {
	Reason           string
	TaskID           int64
	OriginalPriority model.Priority
	DecayedPriority  model.Priority
	UrgencyScore     float64
}

// Changed reports whether the decayed priority differs from the stored one.
func (d DecayResult) Changed() bool {
	return d.DecayedPriority != d.OriginalPriority
}

// RankedTask pairs a task with its urgency score.
type RankedTask struct {
	Task  model.Task
	Score float64
}

// Score returns the urgency of task at now in [0,1]. Only pending and snoozed
// tasks are scored; everything else is 0.
func Score(task model.Task, now time.Time) float64 {
	if task.Status != model.TaskPending && task.Status != model.TaskSnoozed {
		return 0
	}

	score := basePriorityScore[task.Priority]

	ageDays := now.Sub(task.CreatedAt).Hours() / 24
	score += clamp(ageDays/ageBonusWindow, 0, maxAgeBonus)

	if task.DueDate != nil {
		hoursUntilDue := task.DueDate.Sub(now).Hours()
		for _, b := range dueBonuses {
			if hoursUntilDue <= b.hours {
				score += b.bonus
				break
			}
		}
	}

	if task.Status == model.TaskSnoozed {
		score -= snoozePenalty
	}

	return clamp(score, 0, 1)
}

// PriorityForScore discretises an urgency score.
func PriorityForScore(score float64) model.Priority {
	for _, t := range priorityThresholds {
		if score >= t.min {
			return t.priority
		}
	}
	return model.PriorityLow
}

// Decay recomputes the priority of task from its urgency at now.
func Decay(task model.Task, now time.Time) DecayResult {
	score := Score(task, now)
	decayed := PriorityForScore(score)

	var b strings.Builder
	if decayed != task.Priority {
		// Label follows the stored ordinal comparison; pending product confirmation.
		if decayed < task.Priority {
			b.WriteString("Escalated: ")
		} else {
			b.WriteString("De-escalated: ")
		}
	}

	if ageDays := int(now.Sub(task.CreatedAt) / day); ageDays > 0 {
		fmt.Fprintf(&b, "%dd old. ", ageDays)
	}

	if task.DueDate != nil {
		hoursLeft := int(task.DueDate.Sub(now) / time.Hour)
		switch {
		case hoursLeft < 0:
			fmt.Fprintf(&b, "Overdue by %dh. ", -hoursLeft)
		case hoursLeft < 24:
			fmt.Fprintf(&b, "Due in %dh. ", hoursLeft)
		default:
			fmt.Fprintf(&b, "Due in %dd. ", hoursLeft/24)
		}
	}

	return DecayResult{
		TaskID:           task.ID,
		OriginalPriority: task.Priority,
		DecayedPriority:  decayed,
		UrgencyScore:     score,
		Reason:           strings.TrimRight(b.String(), " "),
	}
}

// DecayAll runs Decay over every task, preserving order.
func DecayAll(tasks []model.Task, now time.Time) []DecayResult {
	results := make([]DecayResult, len(tasks))
	for i, task := range tasks {
		results[i] = Decay(task, now)
	}
	return results
}

// Rank scores every task and orders them most urgent first. Ties keep input order.
func Rank(tasks []model.Task, now time.Time) []RankedTask {
	ranked := make([]RankedTask, len(tasks))
	for i, task := range tasks {
		ranked[i] = RankedTask{Task: task, Score: Score(task, now)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Overdue returns pending tasks whose due date has passed. Snoozed tasks are
// not considered overdue.
func Overdue(tasks []model.Task, now time.Time) []model.Task {
	var out []model.Task
	for _, task := range tasks {
		if task.Status == model.TaskPending && task.DueDate != nil && task.DueDate.Before(now) {
			out = append(out, task)
		}
	}
	return out
}

// DueSoon returns pending tasks due between now and now+within inclusive,
// earliest first.
func DueSoon(tasks []model.Task, now time.Time, within time.Duration) []model.Task {
	cutoff := now.Add(within)
	var out []model.Task
	for _, task := range tasks {
		if task.Status != model.TaskPending || task.DueDate == nil {
			continue
		}
		if task.DueDate.Before(now) || task.DueDate.After(cutoff) {
			continue
		}
		out = append(out, task)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(*out[j].DueDate)
	})
	return out
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
