package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/remindme/internal/assistant"
	"github.com/Veraticus/remindme/internal/chain"
	"github.com/Veraticus/remindme/internal/matcher"
	"github.com/Veraticus/remindme/internal/model"
	"github.com/Veraticus/remindme/internal/parser"
	"github.com/Veraticus/remindme/internal/urgency"
)

const dateLayout = "Mon Jan 2 2006, 3:04 PM"

// RenderParsed lists every attribute the parser recognised.
func RenderParsed(p parser.ParsedTask) string {
	lines := []string{
		FormatTitle("Parsed reminder"),
		field("Description", p.Description),
		field("Priority", FormatPriority(p.Priority)),
		field("Trigger", string(p.TriggerType)+optional(" ", p.TriggerValue)),
	}
	if p.DueDate != nil {
		lines = append(lines, field("Due", p.DueDate.Format(dateLayout)))
	}
	if p.LocationName != "" {
		lines = append(lines, field("Location", LocationIcon+" "+p.LocationName))
	}
	if p.Category != "" {
		lines = append(lines, field("Category", p.Category))
	}
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			tags[i] = fmt.Sprintf("%s (%s)", tag.Name, strings.ToLower(string(tag.Type)))
		}
		lines = append(lines, field("Tags", strings.Join(tags, ", ")))
	}
	if p.IsGoalRelated {
		lines = append(lines, field("Goal", GoalIcon+" "+model.GoalCategoryFor(p.GoalCategory).Title()))
	}
	return strings.Join(lines, "\n")
}

// RenderIntent shows the detected intent and every non-zero phrase score in
// table order.
func RenderIntent(intent matcher.Intent, scores map[matcher.Intent]int) string {
	lines := []string{FormatTitle("Intent: " + string(intent))}
	for _, entry := range matcher.IntentTable() {
		if score := scores[entry.Intent]; score > 0 {
			lines = append(lines, field(string(entry.Intent), fmt.Sprint(score)))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderResponse frames an assistant reply with its matches and follow-ups.
func RenderResponse(resp assistant.IntelligentResponse) string {
	var b strings.Builder

	source := "local"
	if resp.UsedGenerator {
		source = "enhanced"
	}
	title := fmt.Sprintf("%s  %s", resp.Intent, SubtleStyle.Render(fmt.Sprintf("%.0f%% %s", resp.Confidence*100, source)))
	b.WriteString(RenderBox(title, strings.TrimRight(resp.Text, "\n")))

	if len(resp.Tasks) > 0 {
		b.WriteString("\n" + BoldStyle.Render(TaskIcon+" Matched tasks") + "\n")
		for _, m := range resp.Tasks {
			fmt.Fprintf(&b, "  %.2f  %s %s\n", m.Confidence, m.Task.Description, SubtleStyle.Render("("+m.Reason+")"))
		}
	}
	if len(resp.Goals) > 0 {
		b.WriteString("\n" + BoldStyle.Render(GoalIcon+" Matched goals") + "\n")
		for _, m := range resp.Goals {
			fmt.Fprintf(&b, "  %.2f  %s %s\n", m.Confidence, m.Goal.Title, SubtleStyle.Render("("+m.Reason+")"))
		}
	}
	if len(resp.SuggestedActions) > 0 {
		labels := make([]string, len(resp.SuggestedActions))
		for i, a := range resp.SuggestedActions {
			labels[i] = "[" + a.Label + "]"
		}
		b.WriteString("\n" + SubtleStyle.Render(strings.Join(labels, " ")) + "\n")
	}
	return b.String()
}

// RenderUrgency lists tasks in the given order with their urgency score and
// the reason their priority would move.
func RenderUrgency(title string, tasks []model.Task, now time.Time) string {
	if len(tasks) == 0 {
		return FormatTitle(title) + "\n" + SubtleStyle.Render("Nothing here.")
	}

	lines := []string{FormatTitle(title)}
	for i, task := range tasks {
		d := urgency.Decay(task, now)
		priority := FormatPriority(d.OriginalPriority)
		if d.Changed() {
			priority += " " + NextIcon + " " + FormatPriority(d.DecayedPriority)
		}
		lines = append(lines,
			fmt.Sprintf("%2d. %s  %s  %s", i+1, task.Description, priority, SubtleStyle.Render(fmt.Sprintf("%.2f", d.UrgencyScore))))
		if d.Reason != "" {
			lines = append(lines, "    "+SubtleStyle.Render(d.Reason))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderChain shows a chain's steps, its current step and health.
func RenderChain(c chain.TaskChain, now time.Time) string {
	lines := []string{
		FormatTitle(ChainIcon + " " + c.Name),
		field("Progress", fmt.Sprintf("%d/%d (%.0f%%)", c.CompletedCount(), len(c.Tasks), c.Progress()*100)),
		field("Health", healthStyle(c, now).Render(c.Health(now))),
	}

	next, hasNext := c.NextTask()
	for i, task := range c.Tasks {
		marker := " "
		switch {
		case task.Status == model.TaskCompleted:
			marker = SuccessStyle.Render(DoneIcon)
		case hasNext && i == c.CurrentStepIndex:
			marker = TitleStyle.Render(NextIcon)
		}
		line := fmt.Sprintf(" %s %d. %s", marker, i+1, task.Description)
		if task.DueDate != nil {
			line += SubtleStyle.Render("  due " + task.DueDate.Format(dateLayout))
		}
		lines = append(lines, line)
	}

	if hasNext {
		lines = append(lines, "", field("Next", BoldStyle.Render(next.Description)))
	}
	return strings.Join(lines, "\n")
}

func healthStyle(c chain.TaskChain, now time.Time) lipgloss.Style {
	switch {
	case c.IsComplete:
		return SuccessStyle
	case c.OverdueCount(now) > 0:
		return ErrorStyle
	default:
		return BoldStyle
	}
}

// RenderMilestones shows a goal's milestone chain, the suggested next
// milestone and whether the goal is blocked by others.
func RenderMilestones(goal model.Goal, steps []chain.MilestoneStep, next *model.Milestone, dep chain.GoalDependency, goalTitles map[int64]string) string {
	lines := []string{
		FormatTitle(GoalIcon + " " + goal.Title),
		field("Status", string(goal.Status)),
		field("Progress", fmt.Sprintf("%d%%", int(goal.Progress))),
		field("Streak", fmt.Sprintf("%d days (best %d)", goal.CurrentStreak, goal.BestStreak)),
	}

	if dep.IsBlocked {
		names := make([]string, 0, len(dep.DependsOnGoalIDs))
		for _, id := range dep.DependsOnGoalIDs {
			if title, ok := goalTitles[id]; ok {
				names = append(names, title)
			} else {
				names = append(names, fmt.Sprintf("#%d", id))
			}
		}
		lines = append(lines, ErrorStyle.Render(BlockedIcon+" Blocked by: "+strings.Join(names, ", ")))
	}

	if len(steps) == 0 {
		lines = append(lines, SubtleStyle.Render("No milestones yet."))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "")
	for i, step := range steps {
		marker := " "
		switch {
		case step.Milestone.IsCompleted:
			marker = SuccessStyle.Render(DoneIcon)
		case step.IsNext:
			marker = TitleStyle.Render(NextIcon)
		}
		lines = append(lines, fmt.Sprintf(" %s %d. %s", marker, i+1, step.Milestone.Title))
	}
	if next != nil {
		lines = append(lines, "", field("Next", BoldStyle.Render(next.Title)))
	}
	return strings.Join(lines, "\n")
}

// RenderDigest renders the daily overview.
func RenderDigest(d assistant.Digest) string {
	lines := []string{
		FormatTitle("Daily digest for " + d.Date.Format("Monday, Jan 2")),
		fmt.Sprintf("%d open tasks, %d active goals", d.OpenTasks, d.ActiveGoals),
	}

	section := func(title string, total int, items []string) {
		if len(items) == 0 {
			return
		}
		heading := title
		if total > len(items) {
			heading = fmt.Sprintf("%s (%d of %d)", title, len(items), total)
		}
		lines = append(lines, "", BoldStyle.Render(heading))
		for _, item := range items {
			lines = append(lines, "  • "+item)
		}
	}

	section(TaskIcon+" Top priority", d.UrgentTotal, taskLines(d.Urgent))
	section(ErrorStyle.Render("Overdue"), len(d.Overdue), taskLines(d.Overdue))
	section(WarningStyle.Render("Due soon"), len(d.DueSoon), taskLines(d.DueSoon))

	ranked := make([]string, len(d.Ranked))
	for i, r := range d.Ranked {
		ranked[i] = fmt.Sprintf("%s %s", r.Task.Description, SubtleStyle.Render(fmt.Sprintf("%.2f", r.Score)))
	}
	section("Most urgent", len(ranked), ranked)

	shifts := make([]string, len(d.Shifts))
	for i, s := range d.Shifts {
		shifts[i] = fmt.Sprintf("#%d %s %s %s", s.TaskID, s.OriginalPriority, NextIcon, s.DecayedPriority)
	}
	section("Priority shifts", len(shifts), shifts)

	checkIns := make([]string, len(d.CheckIns))
	for i, g := range d.CheckIns {
		checkIns[i] = fmt.Sprintf("%s %s", g.Title, SubtleStyle.Render(fmt.Sprintf("%d%%, streak %d", int(g.Progress), g.CurrentStreak)))
	}
	section(GoalIcon+" Check in today", d.CheckInsTotal, checkIns)

	nudges := make([]string, len(d.Nudges))
	for i, n := range d.Nudges {
		nudges[i] = BoldStyle.Render(n.Title) + " " + n.Message
	}
	section("Nudges", len(nudges), nudges)

	return strings.Join(lines, "\n")
}

func taskLines(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		line := task.Description + " " + FormatPriority(task.Priority)
		if task.DueDate != nil {
			line += SubtleStyle.Render("  due " + task.DueDate.Format(dateLayout))
		}
		out[i] = line
	}
	return out
}

func optional(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}
