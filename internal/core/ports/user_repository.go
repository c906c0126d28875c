package ports

import (
	"context"

	"github.com/spellnotes/notes-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username uniqueness is enforced by the storage layer; Insert returns
// domain.ErrUsernameTaken when the constraint is violated.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}
