package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthNames = `(january|february|march|april|may|june|july|august|september|october|november|december)`

// timePatterns are tried in order; the first that matches anywhere wins.
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)` + monthNames + `\s+(\d{1,2})(?:,?\s+(\d{4}))?`),
	regexp.MustCompile(`(?i)(\d{1,2})\s+` + monthNames + `(?:,?\s+(\d{4}))?`),
	regexp.MustCompile(`(?i)(tomorrow|today|next week|next month|next year)`),
	regexp.MustCompile(`(?i)in\s+(\d+)\s+(day|days|week|weeks|month|months)`),
}

// absoluteLayouts are attempted in order against a month/day phrase with commas removed.
var absoluteLayouts = []string{
	"January 2 2006",
	"January 2",
	"2 January 2006",
	"2 January",
}

var whitespace = regexp.MustCompile(`\s+`)

// findTemporal returns the first temporal phrase in lowered input.
func findTemporal(lowered string) (string, bool) {
	for _, re := range timePatterns {
		if match := re.FindString(lowered); match != "" {
			return match, true
		}
	}
	return "", false
}

// ResolveDate turns a recognised temporal phrase into an absolute time relative to now.
// The second result is false when the phrase cannot be resolved.
func ResolveDate(phrase string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(phrase))

	switch lower {
	case "today":
		return now, true
	case "tomorrow":
		return now.AddDate(0, 0, 1), true
	case "next week":
		return now.AddDate(0, 0, 7), true
	case "next month":
		return now.AddDate(0, 1, 0), true
	case "next year":
		return now.AddDate(1, 0, 0), true
	}

	if rest, ok := strings.CutPrefix(lower, "in "); ok {
		return resolveInDuration(rest, now)
	}

	return resolveAbsolute(lower, now)
}

// resolveInDuration handles the "N days/weeks/months" tail of "in N units".
func resolveInDuration(rest string, now time.Time) (time.Time, bool) {
	parts := strings.Fields(rest)
	if len(parts) < 2 {
		return time.Time{}, false
	}

	amount, err := strconv.Atoi(parts[0])
	if err != nil {
		amount = 1
	}

	unit := parts[1]
	switch {
	case strings.HasPrefix(unit, "day"):
		return now.AddDate(0, 0, amount), true
	case strings.HasPrefix(unit, "week"):
		return now.AddDate(0, 0, 7*amount), true
	case strings.HasPrefix(unit, "month"):
		return now.AddDate(0, amount, 0), true
	}
	return now, true
}

// resolveAbsolute parses "march 15", "15 march 2026" and similar. A missing or
// implausible year (before 2000) is replaced with the current year.
func resolveAbsolute(lower string, now time.Time) (time.Time, bool) {
	cleaned := whitespace.ReplaceAllString(strings.ReplaceAll(lower, ",", " "), " ")
	cleaned = strings.TrimSpace(cleaned)

	for _, layout := range absoluteLayouts {
		parsed, err := time.ParseInLocation(layout, cleaned, now.Location())
		if err != nil {
			continue
		}
		year := parsed.Year()
		if year < 2000 {
			year = now.Year()
		}
		return time.Date(year, parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}
