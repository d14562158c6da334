package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/aiboost/internal/validation"
)

type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Content   ContentConfig   `mapstructure:"content"`
	Session   SessionConfig   `mapstructure:"session"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
	Templates TemplatesConfig `mapstructure:"templates"`
}

type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// ContentSource selects where chapter Markdown is fetched from.
type ContentSource string

const (
	ContentSourceAPI    ContentSource = "api"
	ContentSourceStatic ContentSource = "static"
)

type ContentConfig struct {
	Source  ContentSource `mapstructure:"source" validate:"oneof=api static"`
	BaseURL string        `mapstructure:"base_url" validate:"required_if=Source static"`
}

// SessionBackend selects where the authentication token and user profile are persisted.
type SessionBackend string

const (
	SessionBackendFile  SessionBackend = "file"
	SessionBackendRedis SessionBackend = "redis"
)

type SessionConfig struct {
	Backend  SessionBackend `mapstructure:"backend" validate:"oneof=file redis"`
	File     string         `mapstructure:"file" validate:"required_if=Backend file"`
	RedisURL string         `mapstructure:"redis_url" validate:"required_if=Backend redis"`
	Key      string         `mapstructure:"key" validate:"required"`
}

type OutputsConfig struct {
	ExportDirectory string `mapstructure:"export_directory"`
}

type TemplatesConfig struct {
	ChapterTemplate string `mapstructure:"chapter_template" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *validation.Validator
	envFile   string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/aiboost")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
		envFile:   ".env",
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// A missing .env is the normal case outside development
	if err := godotenv.Load(loader.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", loader.envFile, err)
	}

	v.SetDefault("api.base_url", "http://localhost:5000/api")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("content.source", string(ContentSourceAPI))
	v.SetDefault("content.base_url", "")
	v.SetDefault("session.backend", string(SessionBackendFile))
	v.SetDefault("session.file", filepath.Join("$HOME", ".config", "aiboost", "session.yml"))
	v.SetDefault("session.key", "aiboost:session:default")
	v.SetDefault("outputs.export_directory", filepath.Join("outputs", "chapters"))
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.chapter_template", "")

	if err := v.BindEnv("api.base_url", "AIBOOST_API_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind AIBOOST_API_URL environment variable: %w", err)
	}
	if err := v.BindEnv("content.base_url", "AIBOOST_CONTENT_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind AIBOOST_CONTENT_URL environment variable: %w", err)
	}
	// Redis URLs carry credentials, so they come from the environment
	if err := v.BindEnv("session.redis_url", "AIBOOST_REDIS_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind AIBOOST_REDIS_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
