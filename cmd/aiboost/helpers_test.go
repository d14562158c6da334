package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/aiboost/internal/testutil"
)

const learnerSession = `token: test-token
user:
  id: u-1
  name: Ada
  email: ada@example.com
  role: learner
  enrolled_courses:
    - go-101
`

const mentorSession = `token: mentor-token
user:
  id: m-1
  name: Grace
  email: grace@example.com
  role: mentor
`

const adminSession = `token: admin-token
user:
  id: a-1
  name: Linus
  email: linus@example.com
  role: admin
`

type testEnv struct {
	tmpDir     string
	configPath string
}

// setupBackend serves mux as the backend and writes a config pointing at it.
// An empty sessionYAML leaves the user signed out.
func setupBackend(t *testing.T, mux *http.ServeMux, sessionYAML string) testEnv {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	tmpDir := t.TempDir()
	env := testEnv{
		tmpDir:     tmpDir,
		configPath: testutil.SetupTestConfig(t, tmpDir, server.URL),
	}
	if sessionYAML != "" {
		testutil.WriteSession(t, tmpDir, sessionYAML)
	}
	return env
}

func (env testEnv) sessionFile(t *testing.T) string {
	t.Helper()
	contents, err := os.ReadFile(filepath.Join(env.tmpDir, "session.yml"))
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(contents)
}

// run executes the root command with args against env's config.
func (env testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func readJSON(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload
}

// unexpected fails the test when the backend is called.
func unexpected(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
