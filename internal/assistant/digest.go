package assistant

import (
	"fmt"
	"time"

	"github.com/Veraticus/remindme/internal/model"
	"github.com/Veraticus/remindme/internal/urgency"
)

// Nudge is a short motivational notice about one goal.
type Nudge struct {
	Title   string
	Message string
	GoalID  int64
}

// Digest is the daily overview of open work.
type Digest struct {
	Date          time.Time
	Urgent        []model.Task
	CheckIns      []model.Goal
	Ranked        []urgency.RankedTask
	Overdue       []model.Task
	DueSoon       []model.Task
	Shifts        []urgency.DecayResult
	Nudges        []Nudge
	OpenTasks     int
	ActiveGoals   int
	UrgentTotal   int
	CheckInsTotal int
}

var streakNudges = map[int]struct{ title, format string }{
	7:   {"1 Week Milestone!", "You've been consistent with \"%s\" for a whole week! Keep going!"},
	14:  {"2 Week Milestone!", "Two weeks of dedication to \"%s\"! You're building a real habit!"},
	30:  {"30 Day Milestone!", "A full month of \"%s\"! This is now part of who you are!"},
	100: {"100 Day Milestone!", "100 days of \"%s\"! You are truly extraordinary!"},
}

// Digest summarises tasks and goals as of now. Lists are capped at the
// configured item limit; the totals are not.
func (a *Assistant) Digest(tasks []model.Task, goals []model.Goal, now time.Time) Digest {
	limit := a.config.DigestMaxItems

	var open []model.Task
	var urgent []model.Task
	for _, task := range tasks {
		if task.Status.Closed() {
			continue
		}
		open = append(open, task)
		if task.Priority >= model.PriorityHigh {
			urgent = append(urgent, task)
		}
	}

	var active []model.Goal
	var checkIns []model.Goal
	for _, goal := range goals {
		if goal.Status.Closed() {
			continue
		}
		active = append(active, goal)
		if NeedsCheckIn(goal, now) {
			checkIns = append(checkIns, goal)
		}
	}

	var shifts []urgency.DecayResult
	for _, d := range urgency.DecayAll(open, now) {
		if d.Changed() {
			shifts = append(shifts, d)
		}
	}

	return Digest{
		Date:          now,
		OpenTasks:     len(open),
		ActiveGoals:   len(active),
		Urgent:        urgent[:min(len(urgent), limit)],
		UrgentTotal:   len(urgent),
		CheckIns:      checkIns[:min(len(checkIns), limit)],
		CheckInsTotal: len(checkIns),
		Ranked:        urgency.Rank(open, now)[:min(len(open), limit)],
		Overdue:       urgency.Overdue(open, now),
		DueSoon:       urgency.DueSoon(open, now, a.config.DueWithin),
		Shifts:        shifts,
		Nudges:        Nudges(active, now),
	}
}

// NeedsCheckIn reports whether an in-progress goal with reminders on has not
// been checked in since the start of now's day.
func NeedsCheckIn(goal model.Goal, now time.Time) bool {
	if goal.Status != model.GoalInProgress || !goal.RemindersOn() {
		return false
	}
	if goal.LastCheckedIn == nil {
		return true
	}
	return goal.LastCheckedIn.Before(startOfDay(now))
}

// Nudges returns streak milestone and target date notices for goals.
func Nudges(goals []model.Goal, now time.Time) []Nudge {
	var nudges []Nudge
	for _, goal := range goals {
		if n, ok := streakNudges[goal.CurrentStreak]; ok {
			nudges = append(nudges, Nudge{
				GoalID:  goal.ID,
				Title:   n.title,
				Message: fmt.Sprintf(n.format, goal.Title),
			})
		}

		if goal.TargetDate == nil {
			continue
		}
		progress := int(goal.Progress)
		switch int(goal.TargetDate.Sub(now) / (24 * time.Hour)) {
		case 7:
			nudges = append(nudges, Nudge{
				GoalID:  goal.ID,
				Title:   "1 Week Left",
				Message: fmt.Sprintf("\"%s\" target date is in 1 week. Progress: %d%%", goal.Title, progress),
			})
		case 1:
			nudges = append(nudges, Nudge{
				GoalID:  goal.ID,
				Title:   "Tomorrow is the day!",
				Message: fmt.Sprintf("\"%s\" target is tomorrow. You're at %d%%. Final push!", goal.Title, progress),
			})
		case 0:
			nudges = append(nudges, Nudge{
				GoalID:  goal.ID,
				Title:   "Goal Target Today",
				Message: fmt.Sprintf("Today's the target date for \"%s\"! Progress: %d%%", goal.Title, progress),
			})
		}
	}
	return nudges
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
