package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/aiboost/internal/api"
	"github.com/at-ishikawa/aiboost/internal/config"
	"github.com/at-ishikawa/aiboost/internal/content"
	"github.com/at-ishikawa/aiboost/internal/session"
	"github.com/at-ishikawa/aiboost/internal/user"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// app is what every command needs: the configuration, the session and the
// REST client built on it.
type app struct {
	cfg     *config.Config
	session *session.Session
	client  *api.Client
	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	a := &app{cfg: cfg}
	store, err := a.newSessionStore(ctx)
	if err != nil {
		return nil, err
	}
	sess, err := session.Open(ctx, store)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("session.Open() > %w", err)
	}
	if sess.Expired(time.Now()) {
		slog.Default().Debug("dropping expired session")
		if err := sess.Logout(ctx); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("session.Logout() > %w", err)
		}
	}
	a.session = sess

	a.client = api.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, sess)
	a.closers = append(a.closers, a.client.Close)
	return a, nil
}

func (a *app) newSessionStore(ctx context.Context) (session.Store, error) {
	switch a.cfg.Session.Backend {
	case config.SessionBackendRedis:
		store, err := session.NewRedisStore(ctx, a.cfg.Session.RedisURL, a.cfg.Session.Key)
		if err != nil {
			return nil, fmt.Errorf("session.NewRedisStore() > %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		return session.NewFileStore(a.cfg.Session.File), nil
	}
}

// contentSource returns where chapter Markdown is read from.
func (a *app) contentSource() content.Source {
	if a.cfg.Content.Source == config.ContentSourceStatic {
		return content.NewStaticSource(a.cfg.Content.BaseURL)
	}
	return content.NewAPISource(a.client)
}

func (a *app) contentLoader() *content.Loader {
	return content.NewLoader(a.client, a.contentSource())
}

// signedInUser returns the cached profile, ErrNotSignedIn when signed out or
// ErrAccessDenied for a missing role. roles narrows the check when given.
func (a *app) signedInUser(roles ...user.Role) (*user.User, error) {
	u := a.session.User()
	if len(roles) == 0 {
		roles = user.AllRoles
	}
	if err := user.RequireRole(u, roles...); err != nil {
		return nil, err
	}
	return u, nil
}

func (a *app) Close() error {
	var firstErr error
	for _, closeFunc := range a.closers {
		if err := closeFunc(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// withApp runs f with a fully built app and closes it afterwards.
func withApp(ctx context.Context, f func(a *app) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()
	return f(a)
}

// validateForm checks a form before anything is sent to the backend.
func validateForm(form any) error {
	fv, err := user.NewFormValidator()
	if err != nil {
		return fmt.Errorf("user.NewFormValidator() > %w", err)
	}
	return fv.Validate(form)
}
