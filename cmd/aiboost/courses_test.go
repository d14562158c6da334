package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/aiboost/internal/user"
)

var testCourses = []map[string]any{
	{"id": "go-101", "title": "Go Fundamentals", "description": "Types and goroutines", "category": "programming", "tags": []string{"go"}, "price": 0},
	{"id": "ml-201", "title": "Applied Machine Learning", "description": "Models in production", "category": "ai", "tags": []string{"ml"}, "price": 49},
	{"id": "prompt-101", "title": "Prompt Engineering", "description": "Working with language models", "category": "ai", "tags": []string{"llm"}, "price": 0},
}

func coursesMux(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /courses", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, testCourses)
	})
	mux.HandleFunc("GET /courses/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]string{{"id": "1", "name": "ai"}, {"id": "2", "name": "programming"}})
	})
	mux.HandleFunc("GET /courses/tags", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]string{{"id": "1", "name": "go"}})
	})
	mux.HandleFunc("GET /courses/{courseID}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"id": r.PathValue("courseID"), "title": "Go Fundamentals", "description": "Types and goroutines",
			"category": "programming", "price": 0,
			"chapters": []map[string]any{
				{"id": "ch-2", "title": "Channels", "position": 2, "requiresSubmission": true},
				{"id": "ch-1", "title": "Goroutines", "position": 1},
			},
		})
	})
	return mux
}

func TestCoursesListCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "all courses",
			args: []string{"courses", "list"},
			want: []string{"go-101", "ml-201", "prompt-101", "49.00", "free"},
		},
		{
			name:    "category filter",
			args:    []string{"courses", "list", "--category", "ai"},
			want:    []string{"ml-201", "prompt-101"},
			notWant: []string{"go-101"},
		},
		{
			name:    "search",
			args:    []string{"courses", "list", "--search", "GOROUTINES"},
			want:    []string{"go-101"},
			notWant: []string{"ml-201"},
		},
		{
			name: "no match",
			args: []string{"courses", "list", "--tag", "rust"},
			want: []string{"No courses found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupBackend(t, coursesMux(t), "")
			out, err := env.run(t, "", tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, out, notWant)
			}
		})
	}
}

func TestCoursesListCommand_Sort(t *testing.T) {
	env := setupBackend(t, coursesMux(t), "")

	out, err := env.run(t, "", "courses", "list", "--sort", "desc")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "prompt-101"), strings.Index(out, "go-101"))
	assert.Less(t, strings.Index(out, "go-101"), strings.Index(out, "ml-201"))

	_, err = env.run(t, "", "courses", "list", "--sort", "random")
	assert.ErrorContains(t, err, `invalid value "random"`)
}

func TestCoursesShowCommand(t *testing.T) {
	env := setupBackend(t, coursesMux(t), learnerSession)

	out, err := env.run(t, "", "courses", "show", "go-101")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Fundamentals (free)")
	assert.Contains(t, out, "You are enrolled in this course.")
	assert.Less(t, strings.Index(out, "Goroutines"), strings.Index(out, "Channels"), "chapters are listed by position")
	assert.Contains(t, out, "submission")
}

func TestCoursesCategoriesAndTagsCommands(t *testing.T) {
	env := setupBackend(t, coursesMux(t), "")

	out, err := env.run(t, "", "courses", "categories")
	require.NoError(t, err)
	assert.Equal(t, "ai\nprogramming\n", out)

	out, err = env.run(t, "", "courses", "tags")
	require.NoError(t, err)
	assert.Equal(t, "go\n", out)
}

func TestCoursesEnrollCommand(t *testing.T) {
	t.Run("free course refreshes the profile", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /courses/{courseID}/enroll", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			writeJSON(t, w, map[string]any{"courseId": r.PathValue("courseID"), "enrolled": true})
		})
		mux.HandleFunc("GET /auth/profile", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]any{
				"id": "u-1", "name": "Ada", "email": "ada@example.com", "role": "learner",
				"enrolledCourses": []string{"go-101", "prompt-101"},
			})
		})
		env := setupBackend(t, mux, learnerSession)

		out, err := env.run(t, "", "courses", "enroll", "prompt-101")
		require.NoError(t, err)
		assert.Contains(t, out, "Enrolled in prompt-101")
		assert.Contains(t, env.sessionFile(t), "prompt-101")
	})

	t.Run("paid course returns the checkout", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /courses/{courseID}/enroll", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]any{"courseId": "ml-201", "enrolled": false, "checkoutUrl": "https://pay.example.com/c/1"})
		})
		env := setupBackend(t, mux, learnerSession)

		out, err := env.run(t, "", "courses", "enroll", "ml-201")
		require.NoError(t, err)
		assert.Contains(t, out, "Complete the payment at https://pay.example.com/c/1")
		assert.NotContains(t, env.sessionFile(t), "ml-201")
	})

	t.Run("payment reference is verified", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /courses/{courseID}/enroll/verify", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ref-42", readJSON(t, r)["reference"])
			writeJSON(t, w, map[string]any{"courseId": "ml-201", "enrolled": true})
		})
		mux.HandleFunc("GET /auth/profile", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]any{"id": "u-1", "name": "Ada", "role": "learner", "enrolledCourses": []string{"go-101", "ml-201"}})
		})
		env := setupBackend(t, mux, learnerSession)

		out, err := env.run(t, "", "courses", "enroll", "ml-201", "--reference", "ref-42")
		require.NoError(t, err)
		assert.Contains(t, out, "Enrolled in ml-201")
	})

	t.Run("signed out", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/", unexpected(t))
		env := setupBackend(t, mux, "")

		_, err := env.run(t, "", "courses", "enroll", "go-101")
		assert.ErrorIs(t, err, user.ErrNotSignedIn)
	})
}
