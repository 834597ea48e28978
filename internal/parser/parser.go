// Package parser turns free-form reminder utterances into structured task attributes
// using keyword dictionaries and ordered regular-expression patterns.
package parser

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Veraticus/remindme/internal/model"
)

// TagSuggestion is a tag the parser wants attached to the new task.
type TagSuggestion struct {
	Name string
	Type model.TagType
}

// ParsedTask holds the attributes recognised in an utterance.
// Optional strings are empty when nothing was recognised.
type ParsedTask struct {
	DueDate       *time.Time
	Description   string
	TriggerType   model.TriggerType
	TriggerValue  string
	Category      string
	LocationName  string
	GoalCategory  string
	Tags          []TagSuggestion
	Priority      model.Priority
	IsGoalRelated bool
}

// HasTag reports whether a tag with the given name was suggested.
func (p ParsedTask) HasTag(name string) bool {
	for _, tag := range p.Tags {
		if tag.Name == name {
			return true
		}
	}
	return false
}

// TagNames returns the suggested tag names in order.
func (p ParsedTask) TagNames() []string {
	names := make([]string, len(p.Tags))
	for i, tag := range p.Tags {
		names[i] = tag.Name
	}
	return names
}

// locationTriggerPatterns capture a place name; the first matching pattern wins.
var locationTriggerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)when\s+(?:i\s+)?(?:go|going|visit|travel|am)\s+(?:to|near|at)\s+(.+?)(?:\s+next|\s+time|$)`),
	regexp.MustCompile(`(?i)(?:at|in|near)\s+(?:a\s+|the\s+)?(.+?)(?:\s+next|\s+time|$)`),
	regexp.MustCompile(`(?i)(?:go|going)\s+(?:to|near)\s+(.+?)(?:\s+next|$)`),
}

var remindPrefix = regexp.MustCompile(`(?i)^remind\s+me\s+(?:to\s+)?`)

// Parser parses utterances against an injectable clock.
type Parser struct {
	clock func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the function used to read the current time.
func WithClock(clock func() time.Time) Option {
	return func(p *Parser) {
		p.clock = clock
	}
}

// New creates a Parser that reads the wall clock unless WithClock is given.
func New(opts ...Option) *Parser {
	p := &Parser{clock: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses input relative to the parser's clock.
func (p *Parser) Parse(input string) ParsedTask {
	return Parse(input, p.clock())
}

// Parse extracts task attributes from input. It never fails: anything not
// recognised keeps its default (CONTEXT trigger, MEDIUM priority, empty fields).
func Parse(input string, now time.Time) ParsedTask {
	lowered := strings.ToLower(strings.TrimSpace(input))

	result := ParsedTask{
		TriggerType: model.TriggerContext,
		Priority:    detectPriority(lowered),
	}
	var tags []TagSuggestion

	if phrase, ok := findTemporal(lowered); ok {
		result.TriggerType = model.TriggerTime
		result.TriggerValue = phrase
		if due, resolved := ResolveDate(phrase, now); resolved {
			result.DueDate = &due
		}
	}

	for _, re := range locationTriggerPatterns {
		m := re.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		location := strings.TrimSpace(m[1])
		result.TriggerType = model.TriggerLocation
		result.LocationName = location
		tags = append(tags, TagSuggestion{Name: location, Type: model.TagLocation})
		break
	}

	for _, city := range cityKeywords {
		if !strings.Contains(lowered, city) {
			continue
		}
		tags = append(tags, TagSuggestion{Name: city, Type: model.TagLocation})
		if result.TriggerType == model.TriggerContext {
			result.TriggerType = model.TriggerLocation
			result.LocationName = city
		}
	}

	for _, place := range placeKeywords {
		if !strings.Contains(lowered, place) {
			continue
		}
		tags = append(tags, TagSuggestion{Name: place, Type: model.TagLocation})
		if result.LocationName == "" {
			result.LocationName = place
		}
	}

	for _, word := range strings.Fields(lowered) {
		if category, ok := categoryIndex[word]; ok {
			result.Category = category
			tags = append(tags, TagSuggestion{Name: category, Type: model.TagCategory})
			break
		}
	}

	if containsAny(lowered, goalKeywords) {
		result.IsGoalRelated = true
		result.GoalCategory = result.Category
	}

	result.Description = cleanDescription(input)
	result.Tags = dedupeTags(tags)

	return result
}

func detectPriority(lowered string) model.Priority {
	switch {
	case containsAny(lowered, urgentKeywords):
		return model.PriorityUrgent
	case containsAny(lowered, highKeywords):
		return model.PriorityHigh
	case containsAny(lowered, lowKeywords):
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// cleanDescription strips a leading "remind me [to]" and capitalises the first letter,
// keeping the caller's casing otherwise.
func cleanDescription(input string) string {
	desc := remindPrefix.ReplaceAllString(strings.TrimSpace(input), "")
	if desc == "" {
		return desc
	}
	first, size := utf8.DecodeRuneInString(desc)
	return string(unicode.ToUpper(first)) + desc[size:]
}

// dedupeTags keeps the first tag for each name, preserving insertion order.
func dedupeTags(tags []TagSuggestion) []TagSuggestion {
	seen := make(map[string]bool, len(tags))
	out := make([]TagSuggestion, 0, len(tags))
	for _, tag := range tags {
		if seen[tag.Name] {
			continue
		}
		seen[tag.Name] = true
		out = append(out, tag)
	}
	return out
}
