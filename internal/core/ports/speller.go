package ports

import (
	"context"

	"github.com/spellnotes/notes-api/internal/core/domain"
)

// Speller is the external spelling-check collaborator. An empty slice means
// the text is clean. A non-nil error means the service could not be consulted
// and the caller must fail closed.
type Speller interface {
	Check(ctx context.Context, text string) ([]domain.SpellingError, error)
}

// SpellCache is an optional cache in front of the Speller. A cache failure is
// never fatal; callers fall through to the live check.
type SpellCache interface {
	// Get reports whether a verdict is cached for text and, if so, whether
	// the text was clean.
	Get(ctx context.Context, text string) (clean bool, found bool, err error)
	Set(ctx context.Context, text string, clean bool) error
}
