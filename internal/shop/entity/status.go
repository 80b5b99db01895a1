package entity

import (
	"fmt"
	"strings"
)

// Repair order status vocabulary. Stored in canonical case; input is
// matched case-insensitively. Any status may be set from any other —
// there is no transition graph.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// ValidStatuses in display order.
var ValidStatuses = []string{StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled}

// StatusError reports a status string outside the vocabulary.
type StatusError struct {
	Value string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("invalid status %q, valid statuses are: %s", e.Value, strings.Join(ValidStatuses, ", "))
}

// CanonicalStatus matches candidate against the vocabulary ignoring case
// and returns the canonical-cased value, or a StatusError on no match.
func CanonicalStatus(candidate string) (string, error) {
	for _, s := range ValidStatuses {
		if strings.EqualFold(s, candidate) {
			return s, nil
		}
	}
	return "", &StatusError{Value: candidate}
}
