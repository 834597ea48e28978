// Package cli renders RemindME output for the terminal using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/remindme/internal/model"
)

var (
	// AccentColor is the theme color.
	AccentColor = lipgloss.Color("#7C83FD")
	// SuccessColor marks completed work.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor marks things that need attention soon.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor marks overdue work and failures.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor is for secondary detail.
	SubtleColor = lipgloss.Color("#777777")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	// LabelStyle is used for field names in key/value listings.
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(14)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	// BoxStyle frames assistant replies.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(0, 1)

	// PromptStyle is used for the chat prompt.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)
)

// Icons.
const (
	ReminderIcon = "⏰"
	GoalIcon     = "🎯"
	TaskIcon     = "📋"
	ChainIcon    = "🔗"
	LocationIcon = "📍"
	DoneIcon     = "✓"
	NextIcon     = "→"
	BlockedIcon  = "⛔"
	WarningIcon  = "⚠️"
)

var priorityStyles = map[model.Priority]lipgloss.Style{
	model.PriorityUrgent: ErrorStyle.Bold(true),
	model.PriorityHigh:   WarningStyle,
	model.PriorityMedium: lipgloss.NewStyle(),
	model.PriorityLow:    SubtleStyle,
}

// FormatTitle renders a section title with the app icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(ReminderIcon + " " + title)
}

// FormatWarning renders a warning line.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatError renders an error line.
func FormatError(message string) string {
	return ErrorStyle.Render("✗ " + message)
}

// FormatPriority renders a priority name in its severity color.
func FormatPriority(p model.Priority) string {
	return priorityStyles[p].Render(p.String())
}

// FormatPrompt renders the chat prompt.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

// RenderBox frames content under a title.
func RenderBox(title, content string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, TitleStyle.Render(title), content))
}

func field(label, value string) string {
	return LabelStyle.Render(label) + value
}
