package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/aiboost/internal/course"
)

// Source fetches the raw Markdown of a chapter.
type Source interface {
	Fetch(ctx context.Context, courseID string, chapter course.Chapter) (string, error)
}

// ContentFetcher is the backend resource serving chapter content.
type ContentFetcher interface {
	ChapterContent(ctx context.Context, courseID, chapterID string) (string, error)
}

// APISource reads chapter content from the backend.
type APISource struct {
	fetcher ContentFetcher
}

func NewAPISource(fetcher ContentFetcher) *APISource {
	return &APISource{fetcher: fetcher}
}

func (s *APISource) Fetch(ctx context.Context, courseID string, chapter course.Chapter) (string, error) {
	content, err := s.fetcher.ChapterContent(ctx, courseID, chapter.ID)
	if err != nil {
		return "", fmt.Errorf("fetcher.ChapterContent() > %w", err)
	}
	return content, nil
}

// StaticSource reads chapter files from a static host laid out as
// {baseURL}/{courseID}/chapter-{position}.md.
type StaticSource struct {
	baseURL string
	client  *resty.Client
}

func NewStaticSource(baseURL string) *StaticSource {
	return &StaticSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  resty.New(),
	}
}

func (s *StaticSource) URL(courseID string, chapter course.Chapter) string {
	return fmt.Sprintf("%s/%s/chapter-%d.md", s.baseURL, url.PathEscape(courseID), chapter.Position)
}

func (s *StaticSource) Fetch(ctx context.Context, courseID string, chapter course.Chapter) (string, error) {
	u := s.URL(courseID, chapter)
	res, err := s.client.R().
		SetContext(ctx).
		Get(u)
	if err != nil {
		return "", fmt.Errorf("client.Get(%s) > %w", u, err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("client.Get(%s) > unexpected status %d", u, res.StatusCode())
	}
	return string(res.Body()), nil
}
