// Package cli runs interactive chapter sessions in the terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/aiboost/internal/content"
	"github.com/at-ishikawa/aiboost/internal/lesson"
	"github.com/at-ishikawa/aiboost/internal/progress"
	"github.com/at-ishikawa/aiboost/internal/quiz"
	"github.com/at-ishikawa/aiboost/internal/submission"
)

// noQuizResult is what a chapter without a quiz reports when the learner
// marks it as read.
var noQuizResult = quiz.Result{ScoreEarned: 1, ScoreMax: 1, Percentage: 100}

// ChapterSession prints a chapter and walks the learner through its quiz and
// submission.
type ChapterSession struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	submitter    submission.Submitter
	validator    progress.Validator
	bold         *color.Color
	italic       *color.Color
	success      *color.Color
	failure      *color.Color
}

func NewChapterSession(
	stdin io.Reader,
	stdout io.Writer,
	submitter submission.Submitter,
	validator progress.Validator,
) *ChapterSession {
	return &ChapterSession{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		submitter:    submitter,
		validator:    validator,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		success:      color.New(color.FgGreen),
		failure:      color.New(color.FgRed),
	}
}

// Render prints the chapter without any interaction.
func (s *ChapterSession) Render(view *lesson.View) error {
	_, _ = s.bold.Fprintf(s.stdoutWriter, "%s > Chapter %d: %s\n", view.Course.Title, view.Chapter.Position, view.Chapter.Title)
	if view.Completed() {
		_, _ = s.success.Fprintln(s.stdoutWriter, "Completed")
	}
	fmt.Fprintln(s.stdoutWriter)

	renderer := NewTerminalRenderer(&terminalBlocks{session: s, view: view})
	if err := renderer.Render(s.stdoutWriter, view.Document); err != nil {
		return fmt.Errorf("renderer.Render() > %w", err)
	}
	return nil
}

// Run renders the chapter, runs its quiz, offers the submission and records
// completion through the chapter's gate.
func (s *ChapterSession) Run(ctx context.Context, view *lesson.View, userID string) error {
	if err := s.Render(view); err != nil {
		return err
	}

	tracker, err := view.NewTracker(userID, s.submitter)
	if err != nil {
		return fmt.Errorf("view.NewTracker() > %w", err)
	}
	gate := view.NewGate(s.validator)

	if view.RequiresSubmission {
		if err := s.offerSubmission(ctx, tracker); err != nil {
			return err
		}
	}
	if view.Completed() {
		fmt.Fprintln(s.stdoutWriter, "This chapter is already completed.")
		return nil
	}

	result, ok, err := s.chapterResult(ctx, view)
	if err != nil || !ok {
		return err
	}
	return s.complete(ctx, gate, result, tracker.Status())
}

// chapterResult runs the quiz, or asks to mark a chapter without a quiz as read.
func (s *ChapterSession) chapterResult(ctx context.Context, view *lesson.View) (quiz.Result, bool, error) {
	block, ok := view.Document.QuizBlock()
	if !ok {
		yes, err := s.confirm("Mark this chapter as completed?")
		if err != nil || !yes {
			return quiz.Result{}, false, err
		}
		return noQuizResult, true, nil
	}

	parsed, err := quiz.ParseBlock(block.Body)
	if err != nil {
		return quiz.Result{}, false, fmt.Errorf("quiz.ParseBlock() > %w", err)
	}
	attempt := quiz.NewAttempt(parsed.Questions)
	for {
		result, err := s.runAttempt(ctx, attempt)
		if err != nil {
			return quiz.Result{}, false, err
		}
		s.printResult(result)
		if result.CompletionPassed() {
			return result, true, nil
		}
		retry, err := s.confirm(fmt.Sprintf("A score of %d%% is required to complete the chapter. Retry?", quiz.CompletionPassPercent))
		if err != nil || !retry {
			return result, false, err
		}
		attempt.Reset()
	}
}

var errInvalidChoice = errors.New("invalid choice")

// runAttempt asks every question in order. Entering "b" goes back one question.
func (s *ChapterSession) runAttempt(ctx context.Context, attempt *quiz.Attempt) (quiz.Result, error) {
	if attempt.Len() == 0 {
		return quiz.Result{}, quiz.ErrNoQuestions
	}
	for {
		if err := ctx.Err(); err != nil {
			return quiz.Result{}, err
		}
		index, q := attempt.Current()
		_, _ = s.bold.Fprintf(s.stdoutWriter, "\nQuestion %d/%d: %s\n", index+1, attempt.Len(), q.Prompt)
		for i, option := range q.Options {
			fmt.Fprintf(s.stdoutWriter, "  %d) %s\n", i+1, option)
		}
		fmt.Fprint(s.stdoutWriter, "Answer: ")

		input, err := s.readLine()
		if err != nil {
			return quiz.Result{}, err
		}
		if input == "b" {
			if err := attempt.Previous(); err != nil {
				_, _ = s.failure.Fprintln(s.stdoutWriter, err)
			}
			continue
		}
		option, err := optionAt(q, input)
		if err != nil {
			_, _ = s.failure.Fprintf(s.stdoutWriter, "%v, enter a number between 1 and %d\n", err, len(q.Options))
			continue
		}
		if err := attempt.Choose(option); err != nil {
			return quiz.Result{}, fmt.Errorf("attempt.Choose() > %w", err)
		}
		if !attempt.IsLast() {
			if err := attempt.Next(); err != nil {
				return quiz.Result{}, fmt.Errorf("attempt.Next() > %w", err)
			}
			continue
		}
		result, err := attempt.Submit()
		if err != nil {
			return quiz.Result{}, fmt.Errorf("attempt.Submit() > %w", err)
		}
		return result, nil
	}
}

func optionAt(q quiz.Question, input string) (string, error) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(q.Options) {
		return "", fmt.Errorf("%w %q", errInvalidChoice, input)
	}
	return q.Options[n-1], nil
}

func (s *ChapterSession) printResult(result quiz.Result) {
	fmt.Fprintf(s.stdoutWriter, "\nScore: %g/%g (%d%%)\n", result.ScoreEarned, result.ScoreMax, result.Score())
	if result.SelfGradePassed() {
		_, _ = s.success.Fprintln(s.stdoutWriter, "Passed")
		return
	}
	_, _ = s.failure.Fprintln(s.stdoutWriter, "Not passed")
}

func (s *ChapterSession) complete(ctx context.Context, gate *progress.Gate, result quiz.Result, status submission.Status) error {
	decision, err := gate.Evaluate(ctx, result, status)
	if errors.Is(err, progress.ErrAwaitingApproval) {
		_, _ = s.italic.Fprintln(s.stdoutWriter, "Quiz passed, awaiting mentor approval of your submission before the chapter is completed.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("gate.Evaluate() > %w", err)
	}
	if decision.Fire {
		_, _ = s.success.Fprintf(s.stdoutWriter, "Chapter completed. Course progress: %.0f%%\n", gate.Progress().Percentage)
	}
	return nil
}

func (s *ChapterSession) offerSubmission(ctx context.Context, tracker *submission.Tracker) error {
	fmt.Fprintf(s.stdoutWriter, "\nSubmission: %s\n", tracker.Status().Label())
	if feedback := tracker.Feedback(); feedback != "" {
		_, _ = s.italic.Fprintf(s.stdoutWriter, "Mentor feedback: %s\n", feedback)
	}
	for tracker.CanSubmit() {
		fmt.Fprint(s.stdoutWriter, "Link to your work (leave empty to skip): ")
		link, err := s.readLine()
		if err != nil {
			return err
		}
		if link == "" {
			return nil
		}
		if err := tracker.Submit(ctx, link); err != nil {
			slog.Default().Debug("submission rejected", "error", err)
			_, _ = s.failure.Fprintf(s.stdoutWriter, "Submission failed: %v\n", err)
			continue
		}
		_, _ = s.success.Fprintf(s.stdoutWriter, "Submitted. Status: %s\n", tracker.Status().Label())
	}
	return nil
}

func (s *ChapterSession) confirm(question string) (bool, error) {
	fmt.Fprintf(s.stdoutWriter, "%s [y/N]: ", question)
	answer, err := s.readLine()
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// readLine returns the next trimmed line. The last line may end without a
// newline.
func (s *ChapterSession) readLine() (string, error) {
	line, err := s.stdinReader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// terminalBlocks prints fenced blocks inline while the chapter is rendered.
type terminalBlocks struct {
	session *ChapterSession
	view    *lesson.View
}

var _ content.BlockHandler = (*terminalBlocks)(nil)

func (b *terminalBlocks) Code(block content.Block) error {
	for _, line := range strings.Split(strings.TrimRight(block.Body, "\n"), "\n") {
		fmt.Fprintf(b.session.stdoutWriter, "    %s\n", line)
	}
	fmt.Fprintln(b.session.stdoutWriter)
	return nil
}

func (b *terminalBlocks) Quiz(block content.Block) error {
	parsed, err := quiz.ParseBlock(block.Body)
	if err != nil {
		_, _ = b.session.failure.Fprintf(b.session.stdoutWriter, "[quiz unavailable: %v]\n\n", err)
		return nil
	}
	_, _ = b.session.bold.Fprintf(b.session.stdoutWriter, "[Quiz: %d questions]\n\n", len(parsed.Questions))
	return nil
}

func (b *terminalBlocks) YouTube(block content.Block) error {
	fmt.Fprintf(b.session.stdoutWriter, "[YouTube] %s\n\n", strings.TrimSpace(block.Body))
	return nil
}

func (b *terminalBlocks) Video(block content.Block) error {
	fmt.Fprintf(b.session.stdoutWriter, "[Video] %s\n\n", strings.TrimSpace(block.Body))
	return nil
}

func (b *terminalBlocks) Submission(block content.Block) error {
	_, _ = b.session.bold.Fprintf(b.session.stdoutWriter, "[Submission: %s]\n", b.view.Status.Label())
	if instructions := strings.TrimSpace(block.Body); instructions != "" {
		fmt.Fprintln(b.session.stdoutWriter, instructions)
	}
	fmt.Fprintln(b.session.stdoutWriter)
	return nil
}
