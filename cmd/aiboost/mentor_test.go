package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMentorPendingCommand(t *testing.T) {
	t.Run("mentor lists pending submissions", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /submissions/pending", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer mentor-token", r.Header.Get("Authorization"))
			writeJSON(t, w, []map[string]any{
				{"id": "s-1", "userName": "Ada", "courseId": "go-101", "chapterId": "ch-2", "link": "https://github.com/ada/work", "status": "pending"},
			})
		})
		env := setupBackend(t, mux, mentorSession)

		out, err := env.run(t, "", "mentor", "pending")
		require.NoError(t, err)
		assert.Contains(t, out, "s-1")
		assert.Contains(t, out, "https://github.com/ada/work")
	})

	t.Run("learner is denied without calling the backend", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/", unexpected(t))
		env := setupBackend(t, mux, learnerSession)

		_, err := env.run(t, "", "mentor", "pending")
		assert.Equal(t, "access denied", errorMessage(err))
	})

	t.Run("backend refusal is access denied too", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /submissions/pending", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		env := setupBackend(t, mux, mentorSession)

		_, err := env.run(t, "", "mentor", "pending")
		assert.Equal(t, "access denied", errorMessage(err))
	})
}

func TestMentorReviewCommand(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("PUT /submissions/{submissionID}", func(w http.ResponseWriter, r *http.Request) {
			body := readJSON(t, r)
			assert.Equal(t, "approved", body["status"])
			assert.Equal(t, "Well done", body["feedback"])
			writeJSON(t, w, map[string]any{"id": r.PathValue("submissionID"), "status": "approved"})
		})
		env := setupBackend(t, mux, mentorSession)

		out, err := env.run(t, "", "mentor", "review", "s-1", "--status", "approved", "--feedback", "Well done")
		require.NoError(t, err)
		assert.Contains(t, out, "Submission s-1: Approved")
	})

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown status", args: []string{"--status", "done"}, wantErr: `invalid status "done"`},
		{name: "pending is not a review", args: []string{"--status", "pending"}, wantErr: "a review must be approved or needs_revision"},
		{name: "missing status", args: nil, wantErr: "a review must be approved or needs_revision"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/", unexpected(t))
			env := setupBackend(t, mux, mentorSession)

			_, err := env.run(t, "", append([]string{"mentor", "review", "s-1"}, tt.args...)...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
