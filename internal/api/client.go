// Package api is the client of the AIBoost REST backend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/at-ishikawa/aiboost/internal/session"
)

var (
	// ErrUnauthorized means the backend rejected the token. The session has
	// been cleared by the time it is returned.
	ErrUnauthorized = errors.New("session expired or invalid, please log in again")
	ErrForbidden    = errors.New("access denied")
)

// ResponseError is any other non-2xx answer of the backend.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("response error %d", e.StatusCode)
	}
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var responseErr *ResponseError
	return errors.As(err, &responseErr) && responseErr.StatusCode == http.StatusNotFound
}

type Client struct {
	httpClient *resty.Client
	session    *session.Session
}

func New(baseURL string, timeout time.Duration, sess *session.Session) *Client {
	client := resty.New()
	client.SetLogger(slogLogger{})
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{
		httpClient: client,
		session:    sess,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// request starts a request carrying the bearer token and a request id.
func (client *Client) request(ctx context.Context) *resty.Request {
	req := client.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if token := client.session.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// send executes req and decodes a successful body into result when it is not nil.
func (client *Client) send(ctx context.Context, req *resty.Request, method, path string, result any) error {
	if result != nil {
		req.SetResult(result)
	}
	response, err := req.Execute(method, path)
	if err != nil {
		slog.Default().Debug("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s > %w", method, path, err)
	}
	return client.check(ctx, method, path, response)
}

func (client *Client) check(ctx context.Context, method, path string, response *resty.Response) error {
	if !response.IsError() {
		return nil
	}
	slog.Default().Debug("backend returned an error",
		"method", method,
		"path", path,
		"status", response.StatusCode(),
	)

	switch response.StatusCode() {
	case http.StatusUnauthorized:
		if err := client.session.Logout(ctx); err != nil {
			slog.Default().Warn("failed to clear the session", "error", err)
		}
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	}
	return &ResponseError{
		StatusCode: response.StatusCode(),
		Message:    errorMessage(response.String()),
	}
}

// errorMessage extracts {"message": "..."} or {"error": "..."} from body.
func errorMessage(body string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return strings.TrimSpace(body)
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
