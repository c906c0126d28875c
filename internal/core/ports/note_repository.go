package ports

import (
	"context"

	"github.com/spellnotes/notes-api/internal/core/domain"
)

// NoteRepository defines persistence operations for notes. All queries are
// scoped by owner id; there is no unscoped listing.
type NoteRepository interface {
	Insert(ctx context.Context, note *domain.Note) (*domain.Note, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Note, error)
}
