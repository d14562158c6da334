package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/at-ishikawa/aiboost/internal/progress"
)

var _ progress.Validator = (*Client)(nil)

func (client *Client) Progress(ctx context.Context, courseID string) (*progress.Progress, error) {
	var result progress.Progress
	req := client.request(ctx).SetPathParam("courseID", courseID)
	if err := client.send(ctx, req, http.MethodGet, "/progress/{courseID}", &result); err != nil {
		return nil, fmt.Errorf("client.Progress(%s) > %w", courseID, err)
	}
	if result.CourseID == "" {
		result.CourseID = courseID
	}
	return &result, nil
}

type validateChapterRequest struct {
	CourseID  string `json:"courseId"`
	ChapterID string `json:"chapterId"`
	Score     int    `json:"score"`
}

// ValidateChapter marks a chapter complete and returns the updated progress.
func (client *Client) ValidateChapter(ctx context.Context, courseID, chapterID string, score int) (*progress.Progress, error) {
	var result progress.Progress
	req := client.request(ctx).SetBody(validateChapterRequest{
		CourseID:  courseID,
		ChapterID: chapterID,
		Score:     score,
	})
	if err := client.send(ctx, req, http.MethodPost, "/progress/validate-chapter", &result); err != nil {
		return nil, fmt.Errorf("client.ValidateChapter(%s, %s) > %w", courseID, chapterID, err)
	}
	return &result, nil
}
