package chain

import (
	"sort"

	"github.com/Veraticus/remindme/internal/model"
)

// GoalDependency records which goals a goal waits on.
type GoalDependency struct {
	DependsOnGoalIDs []int64
	GoalID           int64
	IsBlocked        bool
}

// CheckGoalDependencies reports whether goal is blocked. A goal is blocked when any
// dependency it lists is a known goal that is not completed; unknown ids are ignored.
func CheckGoalDependencies(goal model.Goal, allGoals []model.Goal, dependencies map[int64][]int64) GoalDependency {
	deps := dependencies[goal.ID]

	byID := make(map[int64]model.Goal, len(allGoals))
	for _, g := range allGoals {
		if _, seen := byID[g.ID]; !seen {
			byID[g.ID] = g
		}
	}

	blocked := false
	for _, id := range deps {
		if dep, ok := byID[id]; ok && dep.Status != model.GoalCompleted {
			blocked = true
			break
		}
	}

	return GoalDependency{
		GoalID:           goal.ID,
		DependsOnGoalIDs: deps,
		IsBlocked:        blocked,
	}
}

// SuggestNextMilestone picks the lowest-ordered milestone that is neither marked
// complete nor listed in completed. Ties keep the earlier milestone.
func SuggestNextMilestone(milestones, completed []model.Milestone) (model.Milestone, bool) {
	done := make(map[int64]struct{}, len(completed))
	for _, m := range completed {
		done[m.ID] = struct{}{}
	}

	var best model.Milestone
	found := false
	for _, m := range milestones {
		if m.IsCompleted {
			continue
		}
		if _, ok := done[m.ID]; ok {
			continue
		}
		if !found || m.OrderIndex < best.OrderIndex {
			best = m
			found = true
		}
	}
	return best, found
}

// MilestoneStep is one milestone in a goal's chain.
type MilestoneStep struct {
	Milestone model.Milestone
	IsNext    bool
}

// BuildMilestoneChain orders milestones and flags the first incomplete one as next.
func BuildMilestoneChain(milestones []model.Milestone) []MilestoneStep {
	sorted := append([]model.Milestone(nil), milestones...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})

	steps := make([]MilestoneStep, len(sorted))
	flagged := false
	for i, m := range sorted {
		next := !m.IsCompleted && !flagged
		if next {
			flagged = true
		}
		steps[i] = MilestoneStep{Milestone: m, IsNext: next}
	}
	return steps
}
