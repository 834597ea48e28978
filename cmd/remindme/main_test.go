package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/remindme/internal/common"
	"github.com/Veraticus/remindme/internal/model"
	"github.com/Veraticus/remindme/internal/testutil"
)

func at(day, hour int) time.Time {
	return time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func writeSnapshot(t *testing.T) string {
	t.Helper()
	return testutil.NewSnapshotBuilder(t).
		WithTask(model.Task{ID: 1, Description: "Buy basil", Category: "shopping", LocationName: "supermarket",
			TriggerType: model.TriggerLocation, Priority: model.PriorityMedium, CreatedAt: at(9, 9)}).
		WithTask(model.Task{ID: 2, Description: "Pay rent", Priority: model.PriorityUrgent,
			DueDate: timePtr(at(10, 9)), CreatedAt: at(1, 9)}).
		WithTask(model.Task{ID: 3, Description: "Submit report", Priority: model.PriorityHigh,
			DueDate: timePtr(at(10, 20)), CreatedAt: at(8, 9)}).
		WithTask(model.Task{ID: 4, Description: "Book movers", Status: model.TaskCompleted,
			Priority: model.PriorityMedium, CreatedAt: at(2, 9)}).
		WithTask(model.Task{ID: 5, Description: "Pack boxes", Priority: model.PriorityMedium, CreatedAt: at(3, 9)}).
		WithGoal(model.Goal{ID: 10, Title: "Marathon prep", Category: model.GoalFitness, Status: model.GoalInProgress,
			Progress: 40, CurrentStreak: 7}).
		WithGoal(model.Goal{ID: 11, Title: "Buy running shoes"}).
		WithMilestones(
			model.Milestone{ID: 100, GoalID: 10, Title: "Run 5k", OrderIndex: 0, IsCompleted: true},
			model.Milestone{ID: 101, GoalID: 10, Title: "Run 10k", OrderIndex: 1}).
		WithTag(model.Tag{ID: 50, Name: "errands", Type: model.TagContext}, 1).
		WithDependency(10, 11).
		WithChain("Move house", 4, 5).
		Write()
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "error", "--now", "2026-03-10T14:30:00Z"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "remindme dev")
}

func TestParseAndIntent(t *testing.T) {
	out, err := run(t, "", "parse", "remind", "me", "to", "buy", "basil", "at", "the", "supermarket")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy basil at the supermarket")
	assert.Contains(t, out, "supermarket")

	out, err = run(t, "", "intent", "I'm going to the supermarket")
	require.NoError(t, err)
	assert.Contains(t, out, "GOING_SOMEWHERE")
}

func TestAsk(t *testing.T) {
	path := writeSnapshot(t)

	out, err := run(t, "", "--snapshot", path, "ask", "I'm going to the supermarket")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy basil")
	assert.Contains(t, out, "[View Tasks]")
}

func TestChat(t *testing.T) {
	path := writeSnapshot(t)

	out, err := run(t, "give me a summary\nexit\n", "--snapshot", path, "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "GET_SUMMARY")
	assert.Contains(t, out, "[Complete: Pay rent]")
}

func TestReviewCommands(t *testing.T) {
	path := writeSnapshot(t)

	out, err := run(t, "", "--snapshot", path, "rank", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Pay rent")
	assert.NotContains(t, out, "Pack boxes")

	out, err = run(t, "", "--snapshot", path, "overdue")
	require.NoError(t, err)
	assert.Contains(t, out, "Pay rent")
	assert.NotContains(t, out, "Submit report")

	out, err = run(t, "", "--snapshot", path, "due-soon", "--within", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Submit report")
	assert.NotContains(t, out, "Pay rent")

	_, err = run(t, "", "--snapshot", path, "due-soon", "--within", "0")
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	path := writeSnapshot(t)

	out, err := run(t, "", "--snapshot", path, "digest")
	require.NoError(t, err)
	assert.Contains(t, out, "Tuesday, Mar 10")
	assert.Contains(t, out, "4 open tasks, 2 active goals")
	assert.Contains(t, out, "1 Week Milestone!")
}

func TestChainAndMilestones(t *testing.T) {
	path := writeSnapshot(t)

	out, err := run(t, "", "--snapshot", path, "chain")
	require.NoError(t, err)
	assert.Contains(t, out, "Move house")

	out, err = run(t, "", "--snapshot", path, "chain", "Move house")
	require.NoError(t, err)
	assert.Contains(t, out, "1/2 (50%)")
	assert.Contains(t, out, "Pack boxes")

	_, err = run(t, "", "--snapshot", path, "chain", "Move office")
	assert.ErrorIs(t, err, common.ErrNotFound)

	out, err = run(t, "", "--snapshot", path, "milestones", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Run 10k")
	assert.Contains(t, out, "Blocked by: Buy running shoes")

	_, err = run(t, "", "--snapshot", path, "milestones", "ten")
	assert.Error(t, err)
	_, err = run(t, "", "--snapshot", path, "milestones", "99")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestErrors(t *testing.T) {
	_, err := run(t, "", "--snapshot", filepath.Join(t.TempDir(), "missing.yaml"), "rank")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = run(t, "", "--now", "yesterday", "parse", "buy milk")
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
}
