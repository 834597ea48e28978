// Package service defines the interfaces between the assistant and its collaborators.
package service

import (
	"context"

	"github.com/Veraticus/remindme/internal/model"
)

// Generator produces free text for a prompt. Implementations may be slow,
// rate limited or unavailable; callers treat every error as "no enhancement".
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Store is the read side of the persistence layer.
type Store interface {
	// Task and goal queries
	ActiveTasks() []model.Task
	ActiveGoals() []model.Goal
	AllGoals() []model.Goal
	Task(id int64) (model.Task, error)
	Goal(id int64) (model.Goal, error)

	// Relations
	TagsByTaskID() map[int64][]model.Tag
	MilestonesFor(goalID int64) []model.Milestone
	CompletedMilestones(goalID int64) []model.Milestone
	Chain(name string) ([]model.Task, error)
	ChainNames() []string
	Dependencies() map[int64][]int64
}
