// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
	"time"
)

// TriggerType is the condition class that should fire a reminder.
type TriggerType string

// Trigger type constants.
const (
	TriggerTime     TriggerType = "TIME"
	TriggerLocation TriggerType = "LOCATION"
	TriggerEvent    TriggerType = "EVENT"
	TriggerContext  TriggerType = "CONTEXT"
)

// Valid reports whether t is a known trigger type.
func (t TriggerType) Valid() bool {
	switch t {
	case TriggerTime, TriggerLocation, TriggerEvent, TriggerContext:
		return true
	}
	return false
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Task status constants.
const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskSnoozed    TaskStatus = "SNOOZED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskSnoozed, TaskCancelled:
		return true
	}
	return false
}

// Closed reports whether the task no longer needs attention.
func (s TaskStatus) Closed() bool {
	return s == TaskCompleted || s == TaskCancelled
}

// Priority orders tasks from LOW to URGENT. The numeric value is the ordinal.
type Priority int

// Priority constants, lowest first.
const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

var priorityNames = [...]string{"LOW", "MEDIUM", "HIGH", "URGENT"}

// String returns the upper-case priority name.
func (p Priority) String() string {
	if p < PriorityLow || p > PriorityUrgent {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// Valid reports whether p is one of the four priorities.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

// Less reports whether p is less severe than other.
func (p Priority) Less(other Priority) bool {
	return p < other
}

// ParsePriority converts a case-insensitive priority name.
func ParsePriority(s string) (Priority, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range priorityNames {
		if n == name {
			return Priority(i), nil
		}
	}
	return PriorityMedium, fmt.Errorf("unknown priority %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid priority %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Task is a reminder owned by the persistence layer. Empty optional strings mean "not set".
type Task struct {
	CreatedAt    time.Time   `yaml:"created_at"`
	DueDate      *time.Time  `yaml:"due_date,omitempty"`
	SnoozedUntil *time.Time  `yaml:"snoozed_until,omitempty"`
	Description  string      `yaml:"description"`
	TriggerType  TriggerType `yaml:"trigger_type"`
	TriggerValue string      `yaml:"trigger_value,omitempty"`
	Category     string      `yaml:"category,omitempty"`
	Status       TaskStatus  `yaml:"status"`
	LocationName string      `yaml:"location_name,omitempty"`
	Notes        string      `yaml:"notes,omitempty"`
	ID           int64       `yaml:"id"`
	Priority     Priority    `yaml:"priority"`
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}
