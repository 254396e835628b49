package auth

import (
	"context"
	"encoding/json"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (json.RawMessage, error)
}
