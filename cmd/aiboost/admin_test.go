package main

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testUsers = []map[string]any{
	{"id": "u-1", "name": "Ada", "email": "ada@example.com", "role": "learner", "enrolledCourses": []string{"go-101"}},
	{"id": "m-1", "name": "Grace", "email": "grace@example.com", "role": "mentor", "suspended": true, "enrolledCourses": []string{"ml-201"}},
}

func usersMux(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, testUsers)
	})
	return mux
}

func TestAdminCommands_RequireAdmin(t *testing.T) {
	commands := [][]string{
		{"admin", "users", "list"},
		{"admin", "users", "delete", "u-1"},
		{"admin", "courses", "delete", "go-101"},
		{"admin", "chapters", "delete", "go-101", "ch-1"},
	}
	for _, args := range commands {
		t.Run(args[1]+" "+args[2], func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/", unexpected(t))
			env := setupBackend(t, mux, mentorSession)

			_, err := env.run(t, "", args...)
			assert.Equal(t, "access denied", errorMessage(err))
		})
	}
}

func TestAdminUsersListCommand(t *testing.T) {
	env := setupBackend(t, usersMux(t), adminSession)

	out, err := env.run(t, "", "admin", "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "grace@example.com")
	assert.Contains(t, out, "true")
}

func TestAdminUsersExportCommand(t *testing.T) {
	env := setupBackend(t, usersMux(t), adminSession)
	path := filepath.Join(env.tmpDir, "reports", "users.xlsx")

	out, err := env.run(t, "", "admin", "users", "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 users to "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	rows, err := f.GetRows("Users")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestAdminUsersCreateCommand(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /admin/users", func(w http.ResponseWriter, r *http.Request) {
			body := readJSON(t, r)
			assert.Equal(t, "mentor", body["role"])
			assert.Equal(t, "password1", body["password"])
			writeJSON(t, w, map[string]any{"id": "m-2", "email": body["email"], "role": "mentor"})
		})
		env := setupBackend(t, mux, adminSession)

		out, err := env.run(t, "", "admin", "users", "create",
			"--name", "Barbara", "--email", "barbara@example.com", "--password", "password1", "--role", "mentor")
		require.NoError(t, err)
		assert.Contains(t, out, "Created user m-2 (barbara@example.com)")
	})

	t.Run("invalid form is rejected before any request", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/", unexpected(t))
		env := setupBackend(t, mux, adminSession)

		_, err := env.run(t, "", "admin", "users", "create", "--name", "Barbara", "--password", "short")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email is a required field")
		assert.Contains(t, err.Error(), "password must be at least 8 characters in length")
	})
}

func TestAdminUsersSuspendCommand(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantSuspended bool
		wantOutput    string
	}{
		{name: "suspend", args: []string{"u-1"}, wantSuspended: true, wantOutput: "User u-1 is suspended"},
		{name: "lift", args: []string{"u-1", "--lift"}, wantSuspended: false, wantOutput: "User u-1 is active"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("PATCH /admin/users/{userID}/suspend", func(w http.ResponseWriter, r *http.Request) {
				suspended := readJSON(t, r)["suspended"]
				assert.Equal(t, tt.wantSuspended, suspended)
				writeJSON(t, w, map[string]any{"id": r.PathValue("userID"), "suspended": suspended})
			})
			env := setupBackend(t, mux, adminSession)

			out, err := env.run(t, "", append([]string{"admin", "users", "suspend"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOutput)
		})
	}
}

func TestAdminCoursesCreateCommand(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /courses", func(w http.ResponseWriter, r *http.Request) {
		body := readJSON(t, r)
		assert.Equal(t, "Rust Basics", body["title"])
		assert.Equal(t, []any{"rust", "systems"}, body["tags"])
		assert.Equal(t, float64(19.5), body["price"])
		writeJSON(t, w, map[string]any{"id": "rust-101", "title": body["title"]})
	})
	env := setupBackend(t, mux, adminSession)

	out, err := env.run(t, "", "admin", "courses", "create",
		"--title", "Rust Basics", "--description", "Ownership", "--category", "programming",
		"--tags", "rust,systems", "--price", "19.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Created course rust-101")

	_, err = env.run(t, "", "admin", "courses", "create", "--title", "No category", "--description", "x", "--price=-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category is a required field")
	assert.Contains(t, err.Error(), "price must be 0 or greater")
}

func TestAdminChaptersCreateCommand(t *testing.T) {
	contentFile := filepath.Join(t.TempDir(), "chapter.md")
	require.NoError(t, os.WriteFile(contentFile, []byte("# Ownership\n\nMoves and borrows.\n\n"), 0644))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /courses/{courseID}/chapters", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "rust-101", r.PathValue("courseID"))
		body := readJSON(t, r)
		assert.Equal(t, "# Ownership\n\nMoves and borrows.\n", body["content"])
		assert.Equal(t, float64(1), body["position"])
		assert.Equal(t, true, body["requiresSubmission"])
		writeJSON(t, w, map[string]any{"id": "ch-1", "title": body["title"], "position": 1})
	})
	env := setupBackend(t, mux, adminSession)

	out, err := env.run(t, "", "admin", "chapters", "create", "rust-101",
		"--title", "Ownership", "--position", "1", "--content-file", contentFile, "--requires-submission")
	require.NoError(t, err)
	assert.Contains(t, out, "Created chapter ch-1")

	_, err = env.run(t, "", "admin", "chapters", "create", "rust-101", "--title", "Borrowing")
	assert.ErrorContains(t, err, "position must be 1 or greater")
}

func TestAdminDeleteCommands(t *testing.T) {
	deleted := []string{}
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /", func(w http.ResponseWriter, r *http.Request) {
		deleted = append(deleted, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	env := setupBackend(t, mux, adminSession)

	for _, args := range [][]string{
		{"admin", "users", "delete", "u-1"},
		{"admin", "courses", "delete", "go-101"},
		{"admin", "chapters", "delete", "go-101", "ch-1"},
	} {
		_, err := env.run(t, "", args...)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"/admin/users/u-1", "/courses/go-101", "/courses/go-101/chapters/ch-1"}, deleted)
}
