// Package chain sequences tasks and goal milestones into ordered chains with a
// single current step.
package chain

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Veraticus/remindme/internal/model"
)

// Health labels.
const (
	HealthComplete       = "Complete"
	HealthAlmostDone     = "Almost Done"
	HealthHalfway        = "Halfway There"
	HealthMakingProgress = "Making Progress"
	HealthGettingStarted = "Getting Started"
	HealthNotStarted     = "Not Started"
)

// TaskChain is an ordered run of tasks, oldest first.
type TaskChain struct {
	ID               string
	Name             string
	Tasks            []model.Task
	CurrentStepIndex int
	IsComplete       bool
}

// Build orders tasks by creation time and points at the first task still waiting
// (pending or snoozed), or the first task when none are.
func Build(name string, tasks []model.Task, now time.Time) TaskChain {
	sorted := append([]model.Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	current := 0
	complete := true
	found := false
	for i, task := range sorted {
		if !found && (task.Status == model.TaskPending || task.Status == model.TaskSnoozed) {
			current = i
			found = true
		}
		if task.Status != model.TaskCompleted {
			complete = false
		}
	}

	return TaskChain{
		ID:               "chain_" + strconv.FormatInt(now.UnixMilli(), 10),
		Name:             name,
		Tasks:            sorted,
		CurrentStepIndex: current,
		IsComplete:       complete,
	}
}

// NextTask returns the current step, or false when the chain is complete or the
// step is out of range.
func (c TaskChain) NextTask() (model.Task, bool) {
	if c.IsComplete || c.CurrentStepIndex < 0 || c.CurrentStepIndex >= len(c.Tasks) {
		return model.Task{}, false
	}
	return c.Tasks[c.CurrentStepIndex], true
}

// CompletedCount counts completed tasks in the chain.
func (c TaskChain) CompletedCount() int {
	n := 0
	for _, task := range c.Tasks {
		if task.Status == model.TaskCompleted {
			n++
		}
	}
	return n
}

// Progress is the completed fraction, 0 for an empty chain.
func (c TaskChain) Progress() float64 {
	if len(c.Tasks) == 0 {
		return 0
	}
	return float64(c.CompletedCount()) / float64(len(c.Tasks))
}

// OverdueCount counts pending tasks whose due date is before now.
func (c TaskChain) OverdueCount(now time.Time) int {
	n := 0
	for _, task := range c.Tasks {
		if task.Status == model.TaskPending && task.DueDate != nil && task.DueDate.Before(now) {
			n++
		}
	}
	return n
}

// Health summarises the chain in a short label.
func (c TaskChain) Health(now time.Time) string {
	if c.IsComplete {
		return HealthComplete
	}
	if overdue := c.OverdueCount(now); overdue > 0 {
		return fmt.Sprintf("At Risk (%d overdue)", overdue)
	}

	progress := c.Progress()
	switch {
	case progress >= 0.75:
		return HealthAlmostDone
	case progress >= 0.5:
		return HealthHalfway
	case progress >= 0.25:
		return HealthMakingProgress
	case progress > 0:
		return HealthGettingStarted
	default:
		return HealthNotStarted
	}
}
