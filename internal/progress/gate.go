package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/aiboost/internal/quiz"
	"github.com/at-ishikawa/aiboost/internal/submission"
)

// ErrAwaitingApproval is returned when the quiz passed but the chapter still
// needs an approved submission.
var ErrAwaitingApproval = errors.New("quiz passed, awaiting mentor approval of the submission")

// Decision is the outcome of combining a quiz result with the submission status.
type Decision struct {
	// Fire means the chapter should be validated now.
	Fire bool
	// Blocked means the quiz passed but the submission is not approved yet.
	Blocked bool
}

func Decide(quizPassed, requiresSubmission bool, status submission.Status) Decision {
	canValidate := !requiresSubmission || status == submission.StatusApproved
	return Decision{
		Fire:    quizPassed && canValidate,
		Blocked: quizPassed && !canValidate,
	}
}

//go:generate mockgen -source=gate.go -destination=../mocks/progress/mock_validator.go -package=mock_progress

// Validator marks a chapter complete on the backend and returns the new snapshot.
type Validator interface {
	ValidateChapter(ctx context.Context, courseID, chapterID string, score int) (*Progress, error)
}

// Gate decides whether a chapter is complete and records it. It owns the
// progress snapshot of the chapter's course for one chapter visit.
type Gate struct {
	courseID           string
	chapterID          string
	requiresSubmission bool
	validator          Validator
	snapshot           Progress
}

func NewGate(courseID, chapterID string, requiresSubmission bool, snapshot Progress, validator Validator) *Gate {
	return &Gate{
		courseID:           courseID,
		chapterID:          chapterID,
		requiresSubmission: requiresSubmission,
		validator:          validator,
		snapshot:           snapshot,
	}
}

func (g *Gate) Progress() Progress {
	return g.snapshot
}

func (g *Gate) RequiresSubmission() bool {
	return g.requiresSubmission
}

// Evaluate validates the chapter when result passes the completion threshold
// and the submission allows it. The backend is called at most once per call
// and never retried; the snapshot only changes after a successful call.
func (g *Gate) Evaluate(ctx context.Context, result quiz.Result, status submission.Status) (Decision, error) {
	decision := Decide(result.CompletionPassed(), g.requiresSubmission, status)
	logger := slog.Default().With(
		"courseID", g.courseID,
		"chapterID", g.chapterID,
		"status", status,
	)
	if decision.Blocked {
		logger.Debug("chapter validation blocked", "score", result.Score())
		return decision, ErrAwaitingApproval
	}
	if !decision.Fire {
		return decision, nil
	}

	snapshot, err := g.validator.ValidateChapter(ctx, g.courseID, g.chapterID, result.Score())
	if err != nil {
		logger.Debug("chapter validation failed", "error", err)
		return decision, fmt.Errorf("validator.ValidateChapter() > %w", err)
	}
	if snapshot != nil {
		g.snapshot = *snapshot
	}
	return decision, nil
}
