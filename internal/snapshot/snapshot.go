// Package snapshot loads a read-only YAML export of tasks, goals and their
// relations and answers the queries the engines need.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/remindme/internal/common"
	"github.com/Veraticus/remindme/internal/model"
)

// Snapshot is an in-memory view of the user's data.
type Snapshot struct {
	TaskTags         map[int64][]int64
	GoalDependencies map[int64][]int64
	Chains           map[string][]int64
	Tasks            []model.Task
	Goals            []model.Goal
	Milestones       []model.Milestone
	Tags             []model.Tag
}

// document mirrors the file layout. Records stay raw so defaults can be applied
// before decoding each one.
type document struct {
	TaskTags         map[int64][]int64  `yaml:"task_tags"`
	GoalDependencies map[int64][]int64  `yaml:"goal_dependencies"`
	Chains           map[string][]int64 `yaml:"chains"`
	Tasks            []yaml.Node        `yaml:"tasks"`
	Goals            []yaml.Node        `yaml:"goals"`
	Milestones       []model.Milestone  `yaml:"milestones"`
	Tags             []yaml.Node        `yaml:"tags"`
}

// Load reads the snapshot at path.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.NewUserError(fmt.Sprintf("no snapshot at %s", path), common.ErrNotFound)
		}
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Decode parses and validates a snapshot document. Missing task fields default
// to a pending, medium priority, time-triggered task; goals default to a
// not-started personal goal.
func Decode(r io.Reader) (*Snapshot, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidData, err)
	}

	s := &Snapshot{
		TaskTags:         doc.TaskTags,
		GoalDependencies: doc.GoalDependencies,
		Chains:           doc.Chains,
		Milestones:       doc.Milestones,
		Tasks:            make([]model.Task, 0, len(doc.Tasks)),
		Goals:            make([]model.Goal, 0, len(doc.Goals)),
		Tags:             make([]model.Tag, 0, len(doc.Tags)),
	}

	for i := range doc.Tasks {
		task := model.Task{
			Priority:    model.PriorityMedium,
			Status:      model.TaskPending,
			TriggerType: model.TriggerTime,
		}
		if err := doc.Tasks[i].Decode(&task); err != nil {
			return nil, fmt.Errorf("%w: task %d: %w", common.ErrInvalidData, i, err)
		}
		s.Tasks = append(s.Tasks, task)
	}

	for i := range doc.Goals {
		goal := model.Goal{
			Status:   model.GoalNotStarted,
			Category: model.GoalPersonal,
		}
		if err := doc.Goals[i].Decode(&goal); err != nil {
			return nil, fmt.Errorf("%w: goal %d: %w", common.ErrInvalidData, i, err)
		}
		s.Goals = append(s.Goals, goal)
	}

	for i := range doc.Tags {
		tag := model.Tag{Type: model.TagCustom}
		if err := doc.Tags[i].Decode(&tag); err != nil {
			return nil, fmt.Errorf("%w: tag %d: %w", common.ErrInvalidData, i, err)
		}
		s.Tags = append(s.Tags, tag)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Snapshot) validate() error {
	taskIDs := make(map[int64]bool, len(s.Tasks))
	for _, task := range s.Tasks {
		if taskIDs[task.ID] {
			return fmt.Errorf("%w: duplicate task id %d", common.ErrInvalidData, task.ID)
		}
		taskIDs[task.ID] = true
		if !task.Status.Valid() {
			return fmt.Errorf("%w: task %d: unknown status %q", common.ErrInvalidData, task.ID, task.Status)
		}
		if !task.TriggerType.Valid() {
			return fmt.Errorf("%w: task %d: unknown trigger type %q", common.ErrInvalidData, task.ID, task.TriggerType)
		}
	}

	goalIDs := make(map[int64]bool, len(s.Goals))
	for _, goal := range s.Goals {
		if goalIDs[goal.ID] {
			return fmt.Errorf("%w: duplicate goal id %d", common.ErrInvalidData, goal.ID)
		}
		goalIDs[goal.ID] = true
		if !goal.Status.Valid() {
			return fmt.Errorf("%w: goal %d: unknown status %q", common.ErrInvalidData, goal.ID, goal.Status)
		}
		if !goal.Category.Valid() {
			return fmt.Errorf("%w: goal %d: unknown category %q", common.ErrInvalidData, goal.ID, goal.Category)
		}
	}

	tagIDs := make(map[int64]bool, len(s.Tags))
	for _, tag := range s.Tags {
		if !tag.Type.Valid() {
			return fmt.Errorf("%w: tag %d: unknown type %q", common.ErrInvalidData, tag.ID, tag.Type)
		}
		tagIDs[tag.ID] = true
	}

	for taskID, ids := range s.TaskTags {
		for _, id := range ids {
			if !tagIDs[id] {
				return fmt.Errorf("%w: task %d references unknown tag %d", common.ErrInvalidData, taskID, id)
			}
		}
	}
	for name, ids := range s.Chains {
		for _, id := range ids {
			if !taskIDs[id] {
				return fmt.Errorf("%w: chain %q references unknown task %d", common.ErrInvalidData, name, id)
			}
		}
	}
	return nil
}

// ActiveTasks returns pending, in-progress and snoozed tasks, highest priority
// first and newest first within a priority.
func (s *Snapshot) ActiveTasks() []model.Task {
	var out []model.Task
	for _, task := range s.Tasks {
		switch task.Status {
		case model.TaskPending, model.TaskInProgress, model.TaskSnoozed:
			out = append(out, task)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ActiveGoals returns goals that are not started, in progress or on hold.
func (s *Snapshot) ActiveGoals() []model.Goal {
	var out []model.Goal
	for _, goal := range s.Goals {
		switch goal.Status {
		case model.GoalNotStarted, model.GoalInProgress, model.GoalOnHold:
			out = append(out, goal)
		}
	}
	return out
}

// AllGoals returns every goal regardless of status, in file order.
func (s *Snapshot) AllGoals() []model.Goal {
	return append([]model.Goal(nil), s.Goals...)
}

// TagsByTaskID resolves task_tags into tag records.
func (s *Snapshot) TagsByTaskID() map[int64][]model.Tag {
	byID := make(map[int64]model.Tag, len(s.Tags))
	for _, tag := range s.Tags {
		byID[tag.ID] = tag
	}

	out := make(map[int64][]model.Tag, len(s.TaskTags))
	for taskID, ids := range s.TaskTags {
		for _, id := range ids {
			out[taskID] = append(out[taskID], byID[id])
		}
	}
	return out
}

// MilestonesFor returns the goal's milestones ordered by their index.
func (s *Snapshot) MilestonesFor(goalID int64) []model.Milestone {
	var out []model.Milestone
	for _, m := range s.Milestones {
		if m.GoalID == goalID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

// CompletedMilestones returns the goal's milestones that are marked complete.
func (s *Snapshot) CompletedMilestones(goalID int64) []model.Milestone {
	var out []model.Milestone
	for _, m := range s.MilestonesFor(goalID) {
		if m.IsCompleted {
			out = append(out, m)
		}
	}
	return out
}

// ChainNames lists the named chains in alphabetical order.
func (s *Snapshot) ChainNames() []string {
	names := make([]string, 0, len(s.Chains))
	for name := range s.Chains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chain returns the tasks of the named chain in file order.
func (s *Snapshot) Chain(name string) ([]model.Task, error) {
	ids, ok := s.Chains[name]
	if !ok {
		return nil, fmt.Errorf("chain %q: %w", name, common.ErrNotFound)
	}
	tasks := make([]model.Task, 0, len(ids))
	for _, id := range ids {
		task, err := s.Task(id)
		if err != nil {
			return nil, fmt.Errorf("chain %q: %w", name, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Dependencies returns the goal id -> prerequisite goal ids relation.
func (s *Snapshot) Dependencies() map[int64][]int64 {
	return s.GoalDependencies
}

// Task looks up a task by id.
func (s *Snapshot) Task(id int64) (model.Task, error) {
	for _, task := range s.Tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return model.Task{}, fmt.Errorf("task %d: %w", id, common.ErrNotFound)
}

// Goal looks up a goal by id.
func (s *Snapshot) Goal(id int64) (model.Goal, error) {
	for _, goal := range s.Goals {
		if goal.ID == id {
			return goal, nil
		}
	}
	return model.Goal{}, fmt.Errorf("goal %d: %w", id, common.ErrNotFound)
}
