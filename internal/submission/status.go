// Package submission tracks the mentor review status of a learner's submitted work for one chapter.
package submission

import (
	"fmt"

	"github.com/spf13/pflag"
)

type Status string

const (
	StatusNotSubmitted  Status = "not_submitted"
	StatusPending       Status = "pending"
	StatusApproved      Status = "approved"
	StatusNeedsRevision Status = "needs_revision"
)

var (
	_           pflag.Value = (*Status)(nil)
	AllStatuses             = []Status{StatusNotSubmitted, StatusPending, StatusApproved, StatusNeedsRevision}

	// transitions lists the statuses reachable from each status.
	// Learners move not_submitted and needs_revision to pending; mentors
	// move pending to approved or needs_revision. approved is terminal.
	transitions = map[Status][]Status{
		StatusNotSubmitted:  {StatusPending},
		StatusPending:       {StatusApproved, StatusNeedsRevision},
		StatusNeedsRevision: {StatusPending},
		StatusApproved:      {},
	}
)

// Set implements pflag.Value.
func (s *Status) Set(v string) error {
	for _, status := range AllStatuses {
		if v == string(status) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("invalid status %q, valid values are %v", v, AllStatuses)
}

// String implements pflag.Value.
func (s *Status) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *Status) Type() string {
	return "Status"
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanSubmit reports whether a learner may submit a link in this status.
func (s Status) CanSubmit() bool {
	return s == StatusNotSubmitted || s == StatusNeedsRevision
}

func (s Status) Terminal() bool {
	return s == StatusApproved
}

// Label is the text shown next to the submission form.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Awaiting mentor review"
	case StatusApproved:
		return "Approved"
	case StatusNeedsRevision:
		return "Needs revision"
	default:
		return "Not submitted"
	}
}

// CanTransition reports whether from may move to to. Staying in the same
// status is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return from.Valid()
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
