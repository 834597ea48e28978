package model

import (
	"strings"
	"time"
)

// GoalCategory classifies a goal.
type GoalCategory string

// Goal category constants.
const (
	GoalFitness   GoalCategory = "FITNESS"
	GoalTravel    GoalCategory = "TRAVEL"
	GoalFinancial GoalCategory = "FINANCIAL"
	GoalLearning  GoalCategory = "LEARNING"
	GoalCareer    GoalCategory = "CAREER"
	GoalPersonal  GoalCategory = "PERSONAL"
	GoalHealth    GoalCategory = "HEALTH"
)

// Valid reports whether c is a known goal category.
func (c GoalCategory) Valid() bool {
	switch c {
	case GoalFitness, GoalTravel, GoalFinancial, GoalLearning, GoalCareer, GoalPersonal, GoalHealth:
		return true
	}
	return false
}

// Title returns the category name with only its first letter capitalised.
func (c GoalCategory) Title() string {
	lower := strings.ToLower(string(c))
	if lower == "" {
		return ""
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// GoalCategoryFor maps a parser category onto the goal category used when
// an utterance creates a goal.
func GoalCategoryFor(category string) GoalCategory {
	switch strings.ToLower(category) {
	case "health", "fitness":
		return GoalFitness
	case "travel":
		return GoalTravel
	case "finance":
		return GoalFinancial
	case "learning":
		return GoalLearning
	case "work":
		return GoalCareer
	default:
		return GoalPersonal
	}
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

// Goal status constants.
const (
	GoalNotStarted GoalStatus = "NOT_STARTED"
	GoalInProgress GoalStatus = "IN_PROGRESS"
	GoalOnHold     GoalStatus = "ON_HOLD"
	GoalCompleted  GoalStatus = "COMPLETED"
	GoalAbandoned  GoalStatus = "ABANDONED"
)

// Valid reports whether s is a known goal status.
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalNotStarted, GoalInProgress, GoalOnHold, GoalCompleted, GoalAbandoned:
		return true
	}
	return false
}

// Closed reports whether the goal was finished or given up.
func (s GoalStatus) Closed() bool {
	return s == GoalCompleted || s == GoalAbandoned
}

// Goal is a long-running objective tracked with streaks and milestones.
type Goal struct {
	CreatedAt     time.Time  `yaml:"created_at"`
	TargetDate    *time.Time `yaml:"target_date,omitempty"`
	LastCheckedIn *time.Time `yaml:"last_checked_in,omitempty"`
	// ReminderEnabled is nil when the export leaves it out, which means on.
	ReminderEnabled *bool        `yaml:"reminder_enabled,omitempty"`
	Title           string       `yaml:"title"`
	Description     string       `yaml:"description,omitempty"`
	Category        GoalCategory `yaml:"category"`
	Status          GoalStatus   `yaml:"status"`
	ID              int64        `yaml:"id"`
	Progress        float64      `yaml:"progress"`
	CurrentStreak   int          `yaml:"current_streak"`
	BestStreak      int          `yaml:"best_streak"`
}

// RemindersOn reports whether check-in reminders are enabled for the goal.
func (g Goal) RemindersOn() bool {
	return g.ReminderEnabled == nil || *g.ReminderEnabled
}

// Milestone is one ordered step towards a goal.
type Milestone struct {
	Title       string `yaml:"title"`
	ID          int64  `yaml:"id"`
	GoalID      int64  `yaml:"goal_id"`
	OrderIndex  int    `yaml:"order_index"`
	IsCompleted bool   `yaml:"is_completed"`
}
