package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:5000/api",
			TimeoutSeconds: 30,
		},
		Content: ContentConfig{
			Source: ContentSourceAPI,
		},
		Session: SessionConfig{
			Backend: SessionBackendFile,
			File:    filepath.Join("$HOME", ".config", "aiboost", "session.yml"),
			Key:     "aiboost:session:default",
		},
		Outputs: OutputsConfig{
			ExportDirectory: filepath.Join("outputs", "chapters"),
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `api:
  base_url: https://api.aiboost.example/api
  timeout_seconds: 10
content:
  source: static
  base_url: https://cdn.aiboost.example/chapters
session:
  file: custom/session.yml
outputs:
  export_directory: custom/exports
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.API = APIConfig{BaseURL: "https://api.aiboost.example/api", TimeoutSeconds: 10}
				cfg.Content = ContentConfig{Source: ContentSourceStatic, BaseURL: "https://cdn.aiboost.example/chapters"}
				cfg.Session.File = "custom/session.yml"
				cfg.Outputs.ExportDirectory = "custom/exports"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `api:
  base_url: https://api.aiboost.example
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown keys use defaults",
			configContent: `wrong_key:
  some_value: test
`,
			want: defaultConfig,
		},
		{
			name:            "explicit config file path",
			useExplicitPath: true,
			configContent: `api:
  base_url: https://explicit.example/api
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.API.BaseURL = "https://explicit.example/api"
				return cfg
			},
		},
		{
			name:          "environment overrides the API URL",
			configContent: "",
			env: map[string]string{
				"AIBOOST_API_URL": "https://env.example/api",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.API.BaseURL = "https://env.example/api"
				return cfg
			},
		},
		{
			name: "redis backend requires a URL",
			configContent: `session:
  backend: redis
`,
			wantErrorContains: []string{"invalid configuration", "redis_url"},
		},
		{
			name: "redis backend with URL from the environment",
			configContent: `session:
  backend: redis
`,
			env: map[string]string{
				"AIBOOST_REDIS_URL": "redis://localhost:6379/0",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Session.Backend = SessionBackendRedis
				cfg.Session.RedisURL = "redis://localhost:6379/0"
				return cfg
			},
		},
		{
			name: "unknown content source",
			configContent: `content:
  source: ftp
`,
			wantErrorContains: []string{"invalid configuration", "source must be one of [api static]"},
		},
		{
			name: "invalid API URL",
			configContent: `api:
  base_url: not a url
`,
			wantErrorContains: []string{"base_url must be a valid URL"},
		},
		{
			name: "missing chapter template file",
			configContent: `templates:
  chapter_template: /nonexistent/chapter.md.go.tmpl
`,
			wantErrorContains: []string{"templates.chapter_template must be an existing and readable file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "explicit.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfigLoader_Load_DotEnv(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".env"), []byte("AIBOOST_CONTENT_URL=https://dotenv.example/content\n"), 0644))
	t.Cleanup(func() {
		_ = os.Unsetenv("AIBOOST_CONTENT_URL")
	})

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://dotenv.example/content", got.Content.BaseURL)
}
