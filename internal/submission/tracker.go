package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/aiboost/internal/validation"
)

var (
	ErrSubmitNotAllowed  = errors.New("submission is not allowed in the current status")
	ErrEmptyLink         = errors.New("a link is required")
	ErrInvalidTransition = errors.New("invalid submission status transition")
)

// Key identifies one learner's submission for one chapter.
type Key struct {
	CourseID  string
	ChapterID string
	UserID    string
}

// Record is the backend's view of a submission.
type Record struct {
	ID        string `json:"id,omitempty"`
	CourseID  string `json:"courseId"`
	ChapterID string `json:"chapterId"`
	UserID    string `json:"userId,omitempty"`
	UserName  string `json:"userName,omitempty"`
	Link      string `json:"link,omitempty"`
	Status    Status `json:"status"`
	Feedback  string `json:"feedback,omitempty"`
}

//go:generate mockgen -source=tracker.go -destination=../mocks/submission/mock_submitter.go -package=mock_submission

// Submitter sends a learner's link to the backend.
type Submitter interface {
	SubmitLink(ctx context.Context, key Key, link string) error
}

// Tracker holds the review status of one submission and guards the submit
// action. A Tracker is built fresh on every chapter visit and is not safe for
// concurrent use.
type Tracker struct {
	key       Key
	status    Status
	feedback  string
	draft     string
	submitter Submitter
	validator *validation.Validator
}

func NewTracker(key Key, status Status, feedback string, submitter Submitter) (*Tracker, error) {
	if status == "" {
		status = StatusNotSubmitted
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown submission status %q", status)
	}
	v, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("validation.New() > %w", err)
	}
	return &Tracker{
		key:       key,
		status:    status,
		feedback:  feedback,
		submitter: submitter,
		validator: v,
	}, nil
}

func (t *Tracker) Status() Status {
	return t.status
}

// Feedback returns the mentor's comment while a revision is requested.
func (t *Tracker) Feedback() string {
	if t.status != StatusNeedsRevision {
		return ""
	}
	return t.feedback
}

// CanSubmit drives whether the submit action is offered at all.
func (t *Tracker) CanSubmit() bool {
	return t.status.CanSubmit()
}

// Draft is the link typed but not yet successfully submitted.
func (t *Tracker) Draft() string {
	return t.draft
}

// Submit validates link, moves the status to pending before the backend
// answers and clears the draft once it succeeds. A failed call restores the
// previous status and keeps the draft.
func (t *Tracker) Submit(ctx context.Context, link string) error {
	if !t.CanSubmit() {
		return fmt.Errorf("status %s: %w", t.status, ErrSubmitNotAllowed)
	}
	t.draft = link
	link = strings.TrimSpace(link)
	if link == "" {
		return ErrEmptyLink
	}
	if err := t.validator.Var("link", link, "url"); err != nil {
		return err
	}

	previous := t.status
	t.status = StatusPending
	if err := t.submitter.SubmitLink(ctx, t.key, link); err != nil {
		t.status = previous
		slog.Default().Debug("submission failed",
			"courseID", t.key.CourseID,
			"chapterID", t.key.ChapterID,
			"error", err,
		)
		return fmt.Errorf("submitter.SubmitLink() > %w", err)
	}
	t.draft = ""
	t.feedback = ""
	return nil
}

// Observe applies a status read back from the backend.
func (t *Tracker) Observe(status Status, feedback string) error {
	if !CanTransition(t.status, status) {
		return fmt.Errorf("%s to %s: %w", t.status, status, ErrInvalidTransition)
	}
	t.status = status
	t.feedback = feedback
	return nil
}

// Review is a mentor's decision on a pending submission.
type Review struct {
	Status   Status `json:"status"`
	Feedback string `json:"feedback,omitempty"`
}

func (r Review) Validate() error {
	if r.Status != StatusApproved && r.Status != StatusNeedsRevision {
		return fmt.Errorf("a review must be %s or %s, got %q", StatusApproved, StatusNeedsRevision, r.Status)
	}
	return nil
}
