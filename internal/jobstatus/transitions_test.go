package jobstatus_test

import (
	"testing"

	"github.com/teodor-vladconstantin/job-navigator/internal/jobstatus"
)

func TestParse_ValidValues(t *testing.T) {
	valid := []string{"active", "paused", "closed"}
	for _, s := range valid {
		got, err := jobstatus.Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("Parse(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParse_InvalidValue(t *testing.T) {
	for _, s := range []string{"ACTIVE", "archived", ""} {
		if _, err := jobstatus.Parse(s); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", s)
		}
	}
}

func TestIsTransitionAllowed_Valid(t *testing.T) {
	cases := []struct {
		from jobstatus.Status
		to   jobstatus.Status
	}{
		{jobstatus.StatusActive, jobstatus.StatusPaused},
		{jobstatus.StatusPaused, jobstatus.StatusActive},
		{jobstatus.StatusActive, jobstatus.StatusClosed},
		{jobstatus.StatusPaused, jobstatus.StatusClosed},
	}
	for _, c := range cases {
		if !jobstatus.IsTransitionAllowed(c.from, c.to) {
			t.Errorf("IsTransitionAllowed(%s → %s) should be true", c.from, c.to)
		}
	}
}

func TestIsTransitionAllowed_FromClosed(t *testing.T) {
	targets := []jobstatus.Status{
		jobstatus.StatusActive,
		jobstatus.StatusPaused,
		jobstatus.StatusClosed,
	}
	for _, to := range targets {
		if jobstatus.IsTransitionAllowed(jobstatus.StatusClosed, to) {
			t.Errorf("IsTransitionAllowed(closed → %s) should be false (terminal state)", to)
		}
	}
}

func TestIsTransitionAllowed_Self(t *testing.T) {
	all := []jobstatus.Status{
		jobstatus.StatusActive,
		jobstatus.StatusPaused,
		jobstatus.StatusClosed,
	}
	for _, s := range all {
		if jobstatus.IsTransitionAllowed(s, s) {
			t.Errorf("IsTransitionAllowed(%s → %s) should be false (self)", s, s)
		}
	}
}

func TestIsListable(t *testing.T) {
	if !jobstatus.IsListable(jobstatus.StatusActive) {
		t.Error("IsListable(active) should be true")
	}
	for _, s := range []jobstatus.Status{jobstatus.StatusPaused, jobstatus.StatusClosed} {
		if jobstatus.IsListable(s) {
			t.Errorf("IsListable(%s) should be false", s)
		}
	}
}
