package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/at-ishikawa/aiboost/internal/user"
)

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

func (client *Client) Login(ctx context.Context, form user.LoginForm) (*AuthResponse, error) {
	var result AuthResponse
	if err := client.send(ctx, client.request(ctx).SetBody(form), http.MethodPost, "/auth/login", &result); err != nil {
		return nil, fmt.Errorf("client.Login() > %w", err)
	}
	return &result, nil
}

func (client *Client) Register(ctx context.Context, form user.RegisterForm) (*AuthResponse, error) {
	var result AuthResponse
	if err := client.send(ctx, client.request(ctx).SetBody(form), http.MethodPost, "/auth/register", &result); err != nil {
		return nil, fmt.Errorf("client.Register() > %w", err)
	}
	return &result, nil
}

// Profile returns the signed-in user as the backend knows it.
func (client *Client) Profile(ctx context.Context) (*user.User, error) {
	var result user.User
	if err := client.send(ctx, client.request(ctx), http.MethodGet, "/auth/profile", &result); err != nil {
		return nil, fmt.Errorf("client.Profile() > %w", err)
	}
	return &result, nil
}
