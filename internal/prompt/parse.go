package prompt

import (
	"regexp"
	"strings"
)

// ParsedIntent is the structured reply to an IntentParsing prompt. Optional
// fields are empty when the generator answered blank or "null".
type ParsedIntent struct {
	Intent      string
	Description string
	Location    string
	Date        string
	Priority    string
	Category    string
}

// ParseIntentResponse reads KEY: value lines. Later keys overwrite earlier ones
// and a missing INTENT line yields UNKNOWN.
func ParseIntentResponse(response string) ParsedIntent {
	fields := make(map[string]string)
	for _, line := range strings.Split(response, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.ToUpper(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	intent, ok := fields["INTENT"]
	if !ok {
		intent = "UNKNOWN"
	}

	return ParsedIntent{
		Intent:      intent,
		Description: fields["DESCRIPTION"],
		Location:    optional(fields["LOCATION"]),
		Date:        optional(fields["DATE"]),
		Priority:    optional(fields["PRIORITY"]),
		Category:    optional(fields["CATEGORY"]),
	}
}

func optional(v string) string {
	if v == "null" {
		return ""
	}
	return v
}

var (
	numberedPrefix = regexp.MustCompile(`^\d+[.)\-]\s*`)
	bulletPrefix   = regexp.MustCompile(`^[-•]\s*`)
)

// CleanMilestoneLines turns a generated milestone list into bare titles,
// dropping numbering, bullets and blank lines.
func CleanMilestoneLines(response string) []string {
	var titles []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = numberedPrefix.ReplaceAllString(line, "")
		line = bulletPrefix.ReplaceAllString(line, "")
		if line = strings.TrimSpace(line); line != "" {
			titles = append(titles, line)
		}
	}
	return titles
}
