package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/aiboost/internal/submission"
)

func submissionMux(t *testing.T, status submission.Status, submitted *map[string]any) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /submissions/status/{courseID}/{chapterID}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"courseId":  r.PathValue("courseID"),
			"chapterId": r.PathValue("chapterID"),
			"status":    status,
			"link":      "https://github.com/ada/first-try",
			"feedback":  "Add tests please",
		})
	})
	mux.HandleFunc("POST /submissions/submit-link", func(w http.ResponseWriter, r *http.Request) {
		*submitted = readJSON(t, r)
		w.WriteHeader(http.StatusCreated)
	})
	return mux
}

func TestSubmissionsSubmitCommand(t *testing.T) {
	tests := []struct {
		name          string
		status        submission.Status
		link          string
		wantSubmitted bool
		wantErr       error
	}{
		{
			name:          "revision requested",
			status:        submission.StatusNeedsRevision,
			link:          "https://github.com/ada/second-try",
			wantSubmitted: true,
		},
		{
			name:    "already pending",
			status:  submission.StatusPending,
			link:    "https://github.com/ada/second-try",
			wantErr: submission.ErrSubmitNotAllowed,
		},
		{
			name:    "empty link",
			status:  submission.StatusNotSubmitted,
			link:    "  ",
			wantErr: submission.ErrEmptyLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var submitted map[string]any
			env := setupBackend(t, submissionMux(t, tt.status, &submitted), learnerSession)

			out, err := env.run(t, "", "submissions", "submit", "go-101", "ch-2", tt.link)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, submitted)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "Submitted. Status: Awaiting mentor review")
			assert.Equal(t, map[string]any{"courseId": "go-101", "chapterId": "ch-2", "link": tt.link}, submitted)
		})
	}
}

func TestSubmissionsStatusCommand(t *testing.T) {
	tests := []struct {
		name         string
		status       submission.Status
		wantFeedback bool
	}{
		{name: "needs revision shows feedback", status: submission.StatusNeedsRevision, wantFeedback: true},
		{name: "approved hides feedback", status: submission.StatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var submitted map[string]any
			env := setupBackend(t, submissionMux(t, tt.status, &submitted), learnerSession)

			out, err := env.run(t, "", "submissions", "status", "go-101", "ch-2")
			require.NoError(t, err)
			assert.Contains(t, out, "Status: "+tt.status.Label())
			assert.Contains(t, out, "Link: https://github.com/ada/first-try")
			if tt.wantFeedback {
				assert.Contains(t, out, "Mentor feedback: Add tests please")
			} else {
				assert.NotContains(t, out, "Mentor feedback")
			}
		})
	}
}
