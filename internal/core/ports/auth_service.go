package ports

import (
	"context"

	"github.com/spellnotes/notes-api/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	AccessToken string
	TokenType   string
}

// AuthService implements registration, login and per-request session resolution.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Authenticate verifies a bearer token and resolves it to a user record.
	// Every failure path returns domain.ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
