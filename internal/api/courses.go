package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/at-ishikawa/aiboost/internal/course"
)

func (client *Client) Courses(ctx context.Context) ([]course.Course, error) {
	var result []course.Course
	if err := client.send(ctx, client.request(ctx), http.MethodGet, "/courses", &result); err != nil {
		return nil, fmt.Errorf("client.Courses() > %w", err)
	}
	return result, nil
}

func (client *Client) Course(ctx context.Context, courseID string) (*course.Course, error) {
	var result course.Course
	req := client.request(ctx).SetPathParam("courseID", courseID)
	if err := client.send(ctx, req, http.MethodGet, "/courses/{courseID}", &result); err != nil {
		return nil, fmt.Errorf("client.Course(%s) > %w", courseID, err)
	}
	return &result, nil
}

func (client *Client) Categories(ctx context.Context) ([]course.Category, error) {
	var result []course.Category
	if err := client.send(ctx, client.request(ctx), http.MethodGet, "/courses/categories", &result); err != nil {
		return nil, fmt.Errorf("client.Categories() > %w", err)
	}
	return result, nil
}

func (client *Client) Tags(ctx context.Context) ([]course.Tag, error) {
	var result []course.Tag
	if err := client.send(ctx, client.request(ctx), http.MethodGet, "/courses/tags", &result); err != nil {
		return nil, fmt.Errorf("client.Tags() > %w", err)
	}
	return result, nil
}

// Enroll enrolls the user in a free course, or returns the checkout URL of a
// paid one.
func (client *Client) Enroll(ctx context.Context, courseID string) (*course.Enrollment, error) {
	var result course.Enrollment
	req := client.request(ctx).SetPathParam("courseID", courseID)
	if err := client.send(ctx, req, http.MethodPost, "/courses/{courseID}/enroll", &result); err != nil {
		return nil, fmt.Errorf("client.Enroll(%s) > %w", courseID, err)
	}
	return &result, nil
}

// VerifyEnrollment confirms a paid enrollment with the payment reference
// returned by the checkout provider.
func (client *Client) VerifyEnrollment(ctx context.Context, courseID, reference string) (*course.Enrollment, error) {
	var result course.Enrollment
	req := client.request(ctx).
		SetPathParam("courseID", courseID).
		SetBody(map[string]string{"reference": reference})
	if err := client.send(ctx, req, http.MethodPost, "/courses/{courseID}/enroll/verify", &result); err != nil {
		return nil, fmt.Errorf("client.VerifyEnrollment(%s) > %w", courseID, err)
	}
	return &result, nil
}

func (client *Client) CreateCourse(ctx context.Context, form course.CourseForm) (*course.Course, error) {
	var result course.Course
	if err := client.send(ctx, client.request(ctx).SetBody(form), http.MethodPost, "/courses", &result); err != nil {
		return nil, fmt.Errorf("client.CreateCourse() > %w", err)
	}
	return &result, nil
}

func (client *Client) UpdateCourse(ctx context.Context, courseID string, form course.CourseForm) (*course.Course, error) {
	var result course.Course
	req := client.request(ctx).
		SetPathParam("courseID", courseID).
		SetBody(form)
	if err := client.send(ctx, req, http.MethodPut, "/courses/{courseID}", &result); err != nil {
		return nil, fmt.Errorf("client.UpdateCourse(%s) > %w", courseID, err)
	}
	return &result, nil
}

func (client *Client) DeleteCourse(ctx context.Context, courseID string) error {
	req := client.request(ctx).SetPathParam("courseID", courseID)
	if err := client.send(ctx, req, http.MethodDelete, "/courses/{courseID}", nil); err != nil {
		return fmt.Errorf("client.DeleteCourse(%s) > %w", courseID, err)
	}
	return nil
}
