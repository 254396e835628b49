package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	authDomain "github.com/mealroll/console-backend-go/internal/domain/auth"
	"github.com/mealroll/console-backend-go/internal/pkg/jwt"
	"github.com/mealroll/console-backend-go/internal/pkg/sessionstore"
	"github.com/mealroll/console-backend-go/internal/upstream"
)

type AuthServiceImpl struct {
	backend *upstream.Client
	jwtSvc  jwt.Service
	store   *sessionstore.Store
}

func NewAuthService(backend *upstream.Client, jwtSvc jwt.Service, store *sessionstore.Store) authDomain.AuthService {
	return &AuthServiceImpl{
		backend: backend,
		jwtSvc:  jwtSvc,
		store:   store,
	}
}

// Login proxies credentials to the backend, persists the returned token and
// profile snapshot under the fixed session keys, and mints the console's
// own access token with the backend credential inside the claims.
func (s *AuthServiceImpl) Login(ctx context.Context, req authDomain.LoginRequest) (*authDomain.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.backend.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}
	if result.Token == "" {
		return nil, authDomain.ErrInvalidCredentials
	}

	if err := s.store.Save(sessionstore.Snapshot{
		Token:   result.Token,
		Profile: result.User,
	}); err != nil {
		// The session still works for this process; only persistence failed.
		slog.Warn("failed to persist session snapshot", "error", err)
	}

	accessToken, expiresAt, err := s.jwtSvc.GenerateAccessToken(result.Token, req.Email)
	if err != nil {
		return nil, err
	}

	return &authDomain.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        result.User,
	}, nil
}

// Logout invalidates the backend session and clears the local snapshot.
// The snapshot is cleared even when the backend call fails: an unreachable
// backend must not pin the operator to a dead session.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return authDomain.ErrNoSession
	}

	if err := s.backend.Logout(ctx, token); err != nil {
		slog.Warn("backend logout failed, clearing local session anyway", "error", err)
	}

	return s.store.Clear()
}

func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, req authDomain.UpdateProfileRequest) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return nil, authDomain.ErrNoSession
	}

	updated, err := s.backend.UpdateProfile(ctx, token, req)
	if err != nil {
		return nil, err
	}

	// Keep the stored profile snapshot in sync with what the backend holds.
	if snap, ok, loadErr := s.store.Load(); loadErr == nil && ok {
		snap.Profile = updated
		if saveErr := s.store.Save(snap); saveErr != nil {
			slog.Warn("failed to refresh stored profile snapshot", "error", saveErr)
		}
	}

	return updated, nil
}
