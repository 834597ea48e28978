package chain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/remindme/internal/model"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func step(id int64, createdDaysAgo int, status model.TaskStatus) model.Task {
	return model.Task{
		ID:          id,
		Description: "step",
		Status:      status,
		CreatedAt:   now.AddDate(0, 0, -createdDaysAgo),
	}
}

func ids(tasks []model.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}

func TestBuild(t *testing.T) {
	tasks := []model.Task{
		step(3, 1, model.TaskPending),
		step(1, 5, model.TaskCompleted),
		step(2, 3, model.TaskSnoozed),
	}

	c := Build("Move house", tasks, now)

	assert.Equal(t, "chain_1773144000000", c.ID)
	assert.Equal(t, "Move house", c.Name)
	assert.Equal(t, []int64{1, 2, 3}, ids(c.Tasks))
	assert.Equal(t, 1, c.CurrentStepIndex)
	assert.False(t, c.IsComplete)
	assert.Equal(t, int64(3), tasks[0].ID, "input must not be reordered")

	next, ok := c.NextTask()
	require.True(t, ok)
	assert.Equal(t, int64(2), next.ID)
}

func TestBuild_EqualCreationKeepsOrder(t *testing.T) {
	tasks := []model.Task{
		step(7, 2, model.TaskPending),
		step(8, 2, model.TaskPending),
	}

	c := Build("twins", tasks, now)

	assert.Equal(t, []int64{7, 8}, ids(c.Tasks))
}

func TestBuild_NoWaitingTaskPointsAtFirst(t *testing.T) {
	tasks := []model.Task{
		step(1, 2, model.TaskCompleted),
		step(2, 1, model.TaskInProgress),
	}

	c := Build("busy", tasks, now)

	assert.Equal(t, 0, c.CurrentStepIndex)
	assert.False(t, c.IsComplete)
	next, ok := c.NextTask()
	require.True(t, ok)
	assert.Equal(t, int64(1), next.ID)
}

func TestBuild_AllCompleted(t *testing.T) {
	c := Build("done", []model.Task{
		step(1, 2, model.TaskCompleted),
		step(2, 1, model.TaskCompleted),
	}, now)

	assert.True(t, c.IsComplete)
	_, ok := c.NextTask()
	assert.False(t, ok)
	assert.Equal(t, 2, c.CompletedCount())
	assert.Equal(t, 1.0, c.Progress())
	assert.Equal(t, HealthComplete, c.Health(now))
}

func TestBuild_Empty(t *testing.T) {
	c := Build("empty", nil, now)

	assert.True(t, c.IsComplete)
	assert.Zero(t, c.Progress())
	_, ok := c.NextTask()
	assert.False(t, ok)
}

func TestNextTask_OutOfRange(t *testing.T) {
	c := TaskChain{Tasks: []model.Task{step(1, 0, model.TaskPending)}, CurrentStepIndex: 4}

	_, ok := c.NextTask()
	assert.False(t, ok)
}

func TestHealth(t *testing.T) {
	overdue := now.Add(-time.Hour)

	tests := []struct {
		name     string
		statuses []model.TaskStatus
		overdue  int
		want     string
	}{
		{"not started", []model.TaskStatus{model.TaskPending, model.TaskPending}, -1, HealthNotStarted},
		{"getting started", []model.TaskStatus{model.TaskCompleted, model.TaskPending, model.TaskPending, model.TaskPending, model.TaskPending}, -1, HealthGettingStarted},
		{"making progress", []model.TaskStatus{model.TaskCompleted, model.TaskPending, model.TaskPending, model.TaskPending}, -1, HealthMakingProgress},
		{"halfway", []model.TaskStatus{model.TaskCompleted, model.TaskPending}, -1, HealthHalfway},
		{"almost done", []model.TaskStatus{model.TaskCompleted, model.TaskCompleted, model.TaskCompleted, model.TaskSnoozed}, -1, HealthAlmostDone},
		{"overdue wins over progress", []model.TaskStatus{model.TaskCompleted, model.TaskCompleted, model.TaskCompleted, model.TaskPending}, 3, "At Risk (1 overdue)"},
		{"snoozed overdue not at risk", []model.TaskStatus{model.TaskSnoozed, model.TaskPending}, 0, HealthNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tasks []model.Task
			for i, status := range tt.statuses {
				task := step(int64(i+1), len(tt.statuses)-i, status)
				if i == tt.overdue {
					task.DueDate = &overdue
				}
				tasks = append(tasks, task)
			}
			assert.Equal(t, tt.want, Build("c", tasks, now).Health(now))
		})
	}
}
