package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/remindme/internal/model"
)

func TestSnapshotBuilder_RoundTrip(t *testing.T) {
	due := time.Date(2026, 3, 12, 17, 0, 0, 0, time.UTC)

	s := NewSnapshotBuilder(t).
		WithTask(model.Task{ID: 1, Description: "Buy basil", Priority: model.PriorityHigh, DueDate: &due}).
		WithTask(model.Task{ID: 2, Description: "Pack boxes", Status: model.TaskCompleted}).
		WithGoal(model.Goal{ID: 10, Title: "Run", Status: model.GoalInProgress, Category: model.GoalFitness}).
		WithGoal(model.Goal{ID: 11, Title: "Buy shoes"}).
		WithMilestones(model.Milestone{ID: 100, GoalID: 10, Title: "Run 5k"}).
		WithTag(model.Tag{ID: 50, Name: "errands", Type: model.TagContext}, 1, 2).
		WithDependency(10, 11).
		WithChain("move", 2, 1).
		Load()

	task, err := s.Task(1)
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.Equal(t, model.TaskPending, task.Status)
	require.NotNil(t, task.DueDate)
	assert.True(t, due.Equal(*task.DueDate))

	goal, err := s.Goal(11)
	require.NoError(t, err)
	assert.Equal(t, model.GoalNotStarted, goal.Status)
	assert.Equal(t, model.GoalPersonal, goal.Category)

	assert.Len(t, s.ActiveTasks(), 1)
	assert.Len(t, s.TagsByTaskID()[2], 1)
	assert.Equal(t, []int64{11}, s.Dependencies()[10])

	chain, err := s.Chain("move")
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, int64(2), chain[0].ID)

	assert.Len(t, s.MilestonesFor(10), 1)
}

func TestSnapshotBuilder_Empty(t *testing.T) {
	assert.Equal(t, "{}\n", string(NewSnapshotBuilder(t).Bytes()))
	assert.Empty(t, NewSnapshotBuilder(t).Load().Tasks)
}
