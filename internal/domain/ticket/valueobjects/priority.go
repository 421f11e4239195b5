package valueobjects

import "slices"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func NewPriority(s string) (Priority, error) {
	return parseEnum("priority", s, priorities)
}

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool { return slices.Contains(priorities, p) }

// PriorityValues lists the accepted values from lowest to highest.
func PriorityValues() []string {
	return strs(priorities)
}
