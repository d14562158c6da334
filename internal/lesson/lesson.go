// Package lesson assembles everything a chapter visit needs.
package lesson

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/aiboost/internal/content"
	"github.com/at-ishikawa/aiboost/internal/course"
	"github.com/at-ishikawa/aiboost/internal/progress"
	"github.com/at-ishikawa/aiboost/internal/submission"
)

//go:generate mockgen -source=lesson.go -destination=../mocks/lesson/mock_backend.go -package=mock_lesson

// Backend is the part of the REST client a chapter visit reads from.
type Backend interface {
	content.ChapterFetcher
	content.ContentFetcher
	Course(ctx context.Context, courseID string) (*course.Course, error)
	Progress(ctx context.Context, courseID string) (*progress.Progress, error)
	SubmissionStatus(ctx context.Context, courseID, chapterID string) (*submission.Record, error)
}

// View is a fully loaded chapter.
type View struct {
	Course   course.Course
	Chapter  course.Chapter
	Content  string
	Document *content.Document
	Progress progress.Progress
	Status   submission.Status
	Feedback string
	// RequiresSubmission is set by the chapter flag or by a submission block
	// in the content.
	RequiresSubmission bool
}

type Loader struct {
	backend  Backend
	contents *content.Loader
}

func NewLoader(backend Backend, contents *content.Loader) *Loader {
	return &Loader{
		backend:  backend,
		contents: contents,
	}
}

// Load fetches the course, the progress, the submission status and the
// chapter in parallel. Any failure aborts the whole view, except the chapter
// content which falls back to a placeholder.
func (l *Loader) Load(ctx context.Context, courseID, chapterID string) (*View, error) {
	var (
		c        *course.Course
		p        *progress.Progress
		record   *submission.Record
		chapter  course.Chapter
		markdown string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if c, err = l.backend.Course(ctx, courseID); err != nil {
			return fmt.Errorf("backend.Course() > %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if p, err = l.backend.Progress(ctx, courseID); err != nil {
			return fmt.Errorf("backend.Progress() > %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if record, err = l.backend.SubmissionStatus(ctx, courseID, chapterID); err != nil {
			return fmt.Errorf("backend.SubmissionStatus() > %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if chapter, markdown, err = l.contents.Load(ctx, courseID, chapterID); err != nil {
			return fmt.Errorf("contents.Load() > %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := content.Parse(markdown)
	status := record.Status
	if status == "" {
		status = submission.StatusNotSubmitted
	}
	return &View{
		Course:             *c,
		Chapter:            chapter,
		Content:            markdown,
		Document:           doc,
		Progress:           *p,
		Status:             status,
		Feedback:           record.Feedback,
		RequiresSubmission: chapter.RequiresSubmission || doc.HasSubmissionBlock(),
	}, nil
}

// Headings returns the chapter's table of contents.
func (v *View) Headings() []content.Heading {
	return content.TableOfContents(v.Content)
}

// Completed reports whether the chapter is already validated.
func (v *View) Completed() bool {
	return v.Progress.IsCompleted(v.Chapter.ID)
}

// Next returns the chapter after this one.
func (v *View) Next() (course.Chapter, bool) {
	return v.Course.NextChapter(v.Chapter.Position)
}

// NewTracker starts tracking the submission of userID for this chapter.
func (v *View) NewTracker(userID string, submitter submission.Submitter) (*submission.Tracker, error) {
	key := submission.Key{CourseID: v.Course.ID, ChapterID: v.Chapter.ID, UserID: userID}
	return submission.NewTracker(key, v.Status, v.Feedback, submitter)
}

// NewGate returns the completion gate of this chapter.
func (v *View) NewGate(validator progress.Validator) *progress.Gate {
	return progress.NewGate(v.Course.ID, v.Chapter.ID, v.RequiresSubmission, v.Progress, validator)
}
