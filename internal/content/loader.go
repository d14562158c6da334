// Package content loads chapter Markdown, extracts its headings and
// classifies its fenced blocks.
package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/aiboost/internal/course"
)

// PlaceholderContent is shown in place of a chapter whose content could not be fetched.
const PlaceholderContent = "# Content unavailable\n\nThis chapter's content could not be loaded. Please try again later.\n"

// ChapterFetcher returns chapter metadata.
type ChapterFetcher interface {
	Chapter(ctx context.Context, courseID, chapterID string) (*course.Chapter, error)
}

type Loader struct {
	chapters ChapterFetcher
	source   Source
}

func NewLoader(chapters ChapterFetcher, source Source) *Loader {
	return &Loader{
		chapters: chapters,
		source:   source,
	}
}

// Load returns the chapter metadata and its content. A metadata failure is an
// error; a content failure yields PlaceholderContent.
func (l *Loader) Load(ctx context.Context, courseID, chapterID string) (course.Chapter, string, error) {
	chapter, err := l.chapters.Chapter(ctx, courseID, chapterID)
	if err != nil {
		return course.Chapter{}, "", fmt.Errorf("chapters.Chapter() > %w", err)
	}
	return *chapter, l.Content(ctx, courseID, *chapter), nil
}

// Content fetches the chapter content and never fails.
func (l *Loader) Content(ctx context.Context, courseID string, chapter course.Chapter) string {
	markdown, err := l.source.Fetch(ctx, courseID, chapter)
	if err != nil {
		slog.Default().Warn("failed to load chapter content",
			"courseID", courseID,
			"chapterID", chapter.ID,
			"error", err,
		)
		return PlaceholderContent
	}
	return markdown
}
