package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/remindme/internal/assistant"
	"github.com/Veraticus/remindme/internal/chain"
	"github.com/Veraticus/remindme/internal/matcher"
	"github.com/Veraticus/remindme/internal/model"
	"github.com/Veraticus/remindme/internal/parser"
)

var fixedNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestRenderParsed(t *testing.T) {
	out := RenderParsed(parser.Parse("remind me to buy basil at the supermarket", fixedNow))

	assert.Contains(t, out, "Buy basil at the supermarket")
	assert.Contains(t, out, "LOCATION")
	assert.Contains(t, out, "supermarket (location)")
	assert.Contains(t, out, "shopping")
	assert.NotContains(t, out, "Due")
}

func TestRenderParsed_Goal(t *testing.T) {
	out := RenderParsed(parser.Parse("Start exercise routine from next month", fixedNow))

	assert.Contains(t, out, "Fitness")
	assert.Contains(t, out, "Fri Apr 10 2026")
}

func TestRenderIntent(t *testing.T) {
	input := "remind me to call mom"
	out := RenderIntent(matcher.DetectIntent(input), matcher.IntentScores(input))

	assert.Contains(t, out, "Intent: ADD_TASK")
	assert.NotContains(t, out, "GET_SUMMARY")
}

func TestRenderResponse(t *testing.T) {
	resp := assistant.IntelligentResponse{
		Text:       "Here's what you need to do for the supermarket:\n",
		Intent:     matcher.IntentGoingSomewhere,
		Confidence: 0.6,
		Tasks: []matcher.TaskMatch{
			{Task: model.Task{Description: "Buy basil"}, Confidence: 0.7, Reason: "location: supermarket"},
		},
		SuggestedActions: []assistant.SuggestedAction{{Label: "View Tasks", Type: assistant.ActionNavigate}},
	}

	out := RenderResponse(resp)
	assert.Contains(t, out, "GOING_SOMEWHERE")
	assert.Contains(t, out, "60% local")
	assert.Contains(t, out, "Buy basil")
	assert.Contains(t, out, "location: supermarket")
	assert.Contains(t, out, "[View Tasks]")
}

func TestRenderUrgency(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Description: "Pay rent", Status: model.TaskPending, Priority: model.PriorityMedium,
			CreatedAt: fixedNow.AddDate(0, 0, -3), DueDate: timePtr(fixedNow.Add(-5 * time.Hour))},
	}

	out := RenderUrgency("Overdue", tasks, fixedNow)
	assert.Contains(t, out, "Pay rent")
	assert.Contains(t, out, "MEDIUM")
	assert.Contains(t, out, "Overdue by 5h.")

	assert.Contains(t, RenderUrgency("Due soon", nil, fixedNow), "Nothing here.")
}

func TestRenderChain(t *testing.T) {
	c := chain.Build("Move house", []model.Task{
		{ID: 1, Description: "Book movers", Status: model.TaskCompleted, CreatedAt: fixedNow.AddDate(0, 0, -3)},
		{ID: 2, Description: "Pack boxes", Status: model.TaskPending, CreatedAt: fixedNow.AddDate(0, 0, -2)},
	}, fixedNow)

	out := RenderChain(c, fixedNow)
	assert.Contains(t, out, "Move house")
	assert.Contains(t, out, "1/2 (50%)")
	assert.Contains(t, out, chain.HealthHalfway)
	assert.Contains(t, out, "Pack boxes")
}

func TestRenderMilestones(t *testing.T) {
	goal := model.Goal{ID: 1, Title: "Marathon", Status: model.GoalInProgress, Progress: 40}
	milestones := []model.Milestone{
		{ID: 1, Title: "Run 5k", OrderIndex: 0, IsCompleted: true},
		{ID: 2, Title: "Run 10k", OrderIndex: 1},
	}
	next := milestones[1]
	dep := chain.GoalDependency{GoalID: 1, DependsOnGoalIDs: []int64{2, 3}, IsBlocked: true}

	out := RenderMilestones(goal, chain.BuildMilestoneChain(milestones), &next, dep, map[int64]string{2: "Buy shoes"})
	assert.Contains(t, out, "Blocked by: Buy shoes, #3")
	assert.Contains(t, out, "Run 10k")
	assert.Contains(t, out, "40%")

	empty := RenderMilestones(goal, nil, nil, chain.GoalDependency{}, nil)
	assert.Contains(t, empty, "No milestones yet.")
	assert.NotContains(t, empty, "Blocked")
}

func TestRenderDigest(t *testing.T) {
	d := assistant.Digest{
		Date:          fixedNow,
		OpenTasks:     5,
		ActiveGoals:   2,
		Urgent:        []model.Task{{Description: "Pay rent", Priority: model.PriorityUrgent}},
		UrgentTotal:   4,
		CheckIns:      []model.Goal{{Title: "Run", Progress: 20, CurrentStreak: 7}},
		CheckInsTotal: 1,
		Nudges:        []assistant.Nudge{{Title: "1 Week Milestone!", Message: "Keep going!"}},
	}

	out := RenderDigest(d)
	assert.Contains(t, out, "Tuesday, Mar 10")
	assert.Contains(t, out, "5 open tasks, 2 active goals")
	assert.Contains(t, out, "(1 of 4)")
	assert.Contains(t, out, "Pay rent")
	assert.Contains(t, out, "Run")
	assert.Contains(t, out, "1 Week Milestone!")
	assert.NotContains(t, out, "Overdue")
}
