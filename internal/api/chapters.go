package api

import (
	"context"
	"fmt"
	"net/http"

	"resty.dev/v3"

	"github.com/at-ishikawa/aiboost/internal/content"
	"github.com/at-ishikawa/aiboost/internal/course"
)

var (
	_ content.ChapterFetcher = (*Client)(nil)
	_ content.ContentFetcher = (*Client)(nil)
)

const chapterPath = "/courses/{courseID}/chapters/{chapterID}"

func (client *Client) chapterRequest(ctx context.Context, courseID, chapterID string) *resty.Request {
	return client.request(ctx).
		SetPathParam("courseID", courseID).
		SetPathParam("chapterID", chapterID)
}

func (client *Client) Chapter(ctx context.Context, courseID, chapterID string) (*course.Chapter, error) {
	var result course.Chapter
	if err := client.send(ctx, client.chapterRequest(ctx, courseID, chapterID), http.MethodGet, chapterPath, &result); err != nil {
		return nil, fmt.Errorf("client.Chapter(%s, %s) > %w", courseID, chapterID, err)
	}
	return &result, nil
}

// ChapterContent returns the raw Markdown of a chapter.
func (client *Client) ChapterContent(ctx context.Context, courseID, chapterID string) (string, error) {
	var result struct {
		Content string `json:"content"`
	}
	if err := client.send(ctx, client.chapterRequest(ctx, courseID, chapterID), http.MethodGet, chapterPath+"/content", &result); err != nil {
		return "", fmt.Errorf("client.ChapterContent(%s, %s) > %w", courseID, chapterID, err)
	}
	return result.Content, nil
}

func (client *Client) CreateChapter(ctx context.Context, courseID string, form course.ChapterForm) (*course.Chapter, error) {
	var result course.Chapter
	req := client.request(ctx).
		SetPathParam("courseID", courseID).
		SetBody(form)
	if err := client.send(ctx, req, http.MethodPost, "/courses/{courseID}/chapters", &result); err != nil {
		return nil, fmt.Errorf("client.CreateChapter(%s) > %w", courseID, err)
	}
	return &result, nil
}

func (client *Client) UpdateChapter(ctx context.Context, courseID, chapterID string, form course.ChapterForm) (*course.Chapter, error) {
	var result course.Chapter
	req := client.chapterRequest(ctx, courseID, chapterID).SetBody(form)
	if err := client.send(ctx, req, http.MethodPut, chapterPath, &result); err != nil {
		return nil, fmt.Errorf("client.UpdateChapter(%s, %s) > %w", courseID, chapterID, err)
	}
	return &result, nil
}

func (client *Client) DeleteChapter(ctx context.Context, courseID, chapterID string) error {
	if err := client.send(ctx, client.chapterRequest(ctx, courseID, chapterID), http.MethodDelete, chapterPath, nil); err != nil {
		return fmt.Errorf("client.DeleteChapter(%s, %s) > %w", courseID, chapterID, err)
	}
	return nil
}
