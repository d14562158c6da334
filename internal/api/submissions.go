package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/at-ishikawa/aiboost/internal/submission"
)

var _ submission.Submitter = (*Client)(nil)

type submitLinkRequest struct {
	CourseID  string `json:"courseId"`
	ChapterID string `json:"chapterId"`
	Link      string `json:"link"`
}

func (client *Client) SubmitLink(ctx context.Context, key submission.Key, link string) error {
	req := client.request(ctx).SetBody(submitLinkRequest{
		CourseID:  key.CourseID,
		ChapterID: key.ChapterID,
		Link:      link,
	})
	if err := client.send(ctx, req, http.MethodPost, "/submissions/submit-link", nil); err != nil {
		return fmt.Errorf("client.SubmitLink(%s, %s) > %w", key.CourseID, key.ChapterID, err)
	}
	return nil
}

// SubmissionStatus returns the signed-in user's submission for a chapter. A
// chapter without any submission yet is reported as not submitted.
func (client *Client) SubmissionStatus(ctx context.Context, courseID, chapterID string) (*submission.Record, error) {
	var result submission.Record
	req := client.request(ctx).
		SetPathParam("courseID", courseID).
		SetPathParam("chapterID", chapterID)
	err := client.send(ctx, req, http.MethodGet, "/submissions/status/{courseID}/{chapterID}", &result)
	if IsNotFound(err) {
		return &submission.Record{
			CourseID:  courseID,
			ChapterID: chapterID,
			Status:    submission.StatusNotSubmitted,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("client.SubmissionStatus(%s, %s) > %w", courseID, chapterID, err)
	}
	if result.Status == "" {
		result.Status = submission.StatusNotSubmitted
	}
	return &result, nil
}

// PendingSubmissions lists the submissions waiting for a mentor.
func (client *Client) PendingSubmissions(ctx context.Context) ([]submission.Record, error) {
	var result []submission.Record
	if err := client.send(ctx, client.request(ctx), http.MethodGet, "/submissions/pending", &result); err != nil {
		return nil, fmt.Errorf("client.PendingSubmissions() > %w", err)
	}
	return result, nil
}

var errInvalidReview = errors.New("invalid review")

func (client *Client) ReviewSubmission(ctx context.Context, submissionID string, review submission.Review) (*submission.Record, error) {
	if err := review.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidReview, err)
	}
	var result submission.Record
	req := client.request(ctx).
		SetPathParam("submissionID", submissionID).
		SetBody(review)
	if err := client.send(ctx, req, http.MethodPut, "/submissions/{submissionID}", &result); err != nil {
		return nil, fmt.Errorf("client.ReviewSubmission(%s) > %w", submissionID, err)
	}
	return &result, nil
}
