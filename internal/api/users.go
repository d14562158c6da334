package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/at-ishikawa/aiboost/internal/user"
)

const userPath = "/admin/users/{userID}"

func (client *Client) Users(ctx context.Context) ([]user.User, error) {
	var result []user.User
	if err := client.send(ctx, client.request(ctx), http.MethodGet, "/admin/users", &result); err != nil {
		return nil, fmt.Errorf("client.Users() > %w", err)
	}
	return result, nil
}

func (client *Client) CreateUser(ctx context.Context, form user.UserForm) (*user.User, error) {
	var result user.User
	if err := client.send(ctx, client.request(ctx).SetBody(form), http.MethodPost, "/admin/users", &result); err != nil {
		return nil, fmt.Errorf("client.CreateUser() > %w", err)
	}
	return &result, nil
}

func (client *Client) UpdateUser(ctx context.Context, userID string, form user.UserForm) (*user.User, error) {
	var result user.User
	req := client.request(ctx).
		SetPathParam("userID", userID).
		SetBody(form)
	if err := client.send(ctx, req, http.MethodPut, userPath, &result); err != nil {
		return nil, fmt.Errorf("client.UpdateUser(%s) > %w", userID, err)
	}
	return &result, nil
}

func (client *Client) DeleteUser(ctx context.Context, userID string) error {
	req := client.request(ctx).SetPathParam("userID", userID)
	if err := client.send(ctx, req, http.MethodDelete, userPath, nil); err != nil {
		return fmt.Errorf("client.DeleteUser(%s) > %w", userID, err)
	}
	return nil
}

// SuspendUser suspends or reinstates an account.
func (client *Client) SuspendUser(ctx context.Context, userID string, suspended bool) (*user.User, error) {
	var result user.User
	req := client.request(ctx).
		SetPathParam("userID", userID).
		SetBody(map[string]bool{"suspended": suspended})
	if err := client.send(ctx, req, http.MethodPatch, userPath+"/suspend", &result); err != nil {
		return nil, fmt.Errorf("client.SuspendUser(%s) > %w", userID, err)
	}
	return &result, nil
}
