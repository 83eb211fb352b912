// Package jobstatus defines the lifecycle of a job posting.
//
// Valid status graph:
//
//	ACTIVE ◄──► PAUSED
//	   │           │
//	   └───────────┴──► CLOSED
//
// CLOSED is terminal: the API offers no path back to active.
package jobstatus

import "fmt"

// Status values mirror the jobs.status column.
type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusClosed Status = "closed"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusActive: {StatusPaused, StatusClosed},
	StatusPaused: {StatusActive, StatusClosed},
	// CLOSED is terminal, no outgoing transitions
}

// Parse converts a raw string to a Status, returning an error for unknown
// values.
func Parse(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusActive, StatusPaused, StatusClosed:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal state
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsListable returns true when the status makes a job publicly visible.
func IsListable(s Status) bool { return s == StatusActive }
