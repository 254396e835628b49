package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mealroll/console-backend-go/internal/domain/auth"
)

// LoginResult mirrors the backend's POST /auth/login/ payload.
type LoginResult struct {
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	Message string          `json:"message"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login/", "", body, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout/", token, nil, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req auth.UpdateProfileRequest) (json.RawMessage, error) {
	var updated json.RawMessage
	if err := c.do(ctx, http.MethodPatch, "/api/auth/profile-update/", token, req, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}
