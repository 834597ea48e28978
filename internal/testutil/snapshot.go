// Package testutil builds snapshot fixtures for tests.
//
// Example:
//
//	path := testutil.NewSnapshotBuilder(t).
//		WithTask(model.Task{ID: 1, Description: "Buy basil"}).
//		WithGoal(model.Goal{ID: 10, Title: "Run", Status: model.GoalInProgress}).
//		WithChain("errands", 1).
//		Write()
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/remindme/internal/model"
	"github.com/Veraticus/remindme/internal/snapshot"
)

// SnapshotBuilder assembles a snapshot document. Records missing a status,
// trigger, category or tag type get the same defaults the loader applies.
type SnapshotBuilder struct {
	t   *testing.T
	doc snapshotFile
}

type snapshotFile struct {
	TaskTags         map[int64][]int64  `yaml:"task_tags,omitempty"`
	GoalDependencies map[int64][]int64  `yaml:"goal_dependencies,omitempty"`
	Chains           map[string][]int64 `yaml:"chains,omitempty"`
	Tasks            []model.Task       `yaml:"tasks,omitempty"`
	Goals            []model.Goal       `yaml:"goals,omitempty"`
	Milestones       []model.Milestone  `yaml:"milestones,omitempty"`
	Tags             []model.Tag        `yaml:"tags,omitempty"`
}

// NewSnapshotBuilder starts an empty snapshot.
func NewSnapshotBuilder(t *testing.T) *SnapshotBuilder {
	t.Helper()
	return &SnapshotBuilder{t: t}
}

// WithTask adds a task.
func (b *SnapshotBuilder) WithTask(task model.Task) *SnapshotBuilder {
	if task.Status == "" {
		task.Status = model.TaskPending
	}
	if task.TriggerType == "" {
		task.TriggerType = model.TriggerTime
	}
	b.doc.Tasks = append(b.doc.Tasks, task)
	return b
}

// WithGoal adds a goal.
func (b *SnapshotBuilder) WithGoal(goal model.Goal) *SnapshotBuilder {
	if goal.Status == "" {
		goal.Status = model.GoalNotStarted
	}
	if goal.Category == "" {
		goal.Category = model.GoalPersonal
	}
	b.doc.Goals = append(b.doc.Goals, goal)
	return b
}

// WithMilestones adds milestones.
func (b *SnapshotBuilder) WithMilestones(milestones ...model.Milestone) *SnapshotBuilder {
	b.doc.Milestones = append(b.doc.Milestones, milestones...)
	return b
}

// WithTag adds a tag and attaches it to the given tasks.
func (b *SnapshotBuilder) WithTag(tag model.Tag, taskIDs ...int64) *SnapshotBuilder {
	if tag.Type == "" {
		tag.Type = model.TagCustom
	}
	b.doc.Tags = append(b.doc.Tags, tag)
	for _, id := range taskIDs {
		if b.doc.TaskTags == nil {
			b.doc.TaskTags = make(map[int64][]int64)
		}
		b.doc.TaskTags[id] = append(b.doc.TaskTags[id], tag.ID)
	}
	return b
}

// WithDependency records that goalID waits on dependsOn.
func (b *SnapshotBuilder) WithDependency(goalID int64, dependsOn ...int64) *SnapshotBuilder {
	if b.doc.GoalDependencies == nil {
		b.doc.GoalDependencies = make(map[int64][]int64)
	}
	b.doc.GoalDependencies[goalID] = append(b.doc.GoalDependencies[goalID], dependsOn...)
	return b
}

// WithChain names an ordered group of tasks.
func (b *SnapshotBuilder) WithChain(name string, taskIDs ...int64) *SnapshotBuilder {
	if b.doc.Chains == nil {
		b.doc.Chains = make(map[string][]int64)
	}
	b.doc.Chains[name] = append(b.doc.Chains[name], taskIDs...)
	return b
}

// Bytes encodes the snapshot as YAML.
func (b *SnapshotBuilder) Bytes() []byte {
	b.t.Helper()
	data, err := yaml.Marshal(b.doc)
	if err != nil {
		b.t.Fatalf("failed to encode snapshot: %v", err)
	}
	return data
}

// Write stores the snapshot in a per-test directory and returns its path.
func (b *SnapshotBuilder) Write() string {
	b.t.Helper()
	path := filepath.Join(b.t.TempDir(), "snapshot.yaml")
	if err := os.WriteFile(path, b.Bytes(), 0o600); err != nil {
		b.t.Fatalf("failed to write snapshot: %v", err)
	}
	return path
}

// Load writes the snapshot and loads it back.
func (b *SnapshotBuilder) Load() *snapshot.Snapshot {
	b.t.Helper()
	s, err := snapshot.Load(b.Write())
	if err != nil {
		b.t.Fatalf("failed to load snapshot: %v", err)
	}
	return s
}
