// Package testutil provides shared test helpers for config files and a fake backend.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig writes a config file pointing at apiURL with a file session
// and an export directory under tmpDir. Returns the path to the config file.
func SetupTestConfig(t *testing.T, tmpDir, apiURL string) string {
	t.Helper()

	exportDir := filepath.Join(tmpDir, "exports")
	require.NoError(t, os.MkdirAll(exportDir, 0755))

	configContent := fmt.Sprintf(`api:
  base_url: %s
  timeout_seconds: 5
content:
  source: api
session:
  backend: file
  file: %s
  key: aiboost:session:test
outputs:
  export_directory: %s
`,
		apiURL,
		filepath.Join(tmpDir, "session.yml"),
		exportDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteSession stores a signed-in session at the path SetupTestConfig uses.
func WriteSession(t *testing.T, tmpDir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "session.yml"), []byte(content), 0600))
}
