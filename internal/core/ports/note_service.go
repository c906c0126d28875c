package ports

import (
	"context"

	"github.com/spellnotes/notes-api/internal/core/domain"
)

// NoteService defines use-case operations for notes. The owner is always the
// authenticated user resolved by the auth middleware, never caller-supplied.
type NoteService interface {
	CreateNote(ctx context.Context, owner *domain.User, content string) (*domain.Note, error)
	ListNotes(ctx context.Context, owner *domain.User) ([]*domain.Note, error)
}
