package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/spellnotes/notes-api/internal/core/domain"
	"github.com/spellnotes/notes-api/internal/core/ports"
)

// NoteService implements spell-gated note creation and owner-scoped listing.
type NoteService struct {
	notes   ports.NoteRepository
	speller ports.Speller
	cache   ports.SpellCache
	audit   ports.AuditRecorder
	logger  zerolog.Logger
}

// NewNoteService wires the note use cases. cache and audit may be nil.
func NewNoteService(notes ports.NoteRepository, speller ports.Speller, cache ports.SpellCache, audit ports.AuditRecorder, logger zerolog.Logger) *NoteService {
	return &NoteService{
		notes:   notes,
		speller: speller,
		cache:   cache,
		audit:   audit,
		logger:  logger,
	}
}

// CreateNote persists a note owned by the authenticated user, but only after
// the spelling gate passes. Flagged content and an unreachable speller both
// abort before any write: creation is all-or-nothing relative to the check.
func (s *NoteService) CreateNote(ctx context.Context, owner *domain.User, content string) (*domain.Note, error) {
	if err := s.checkSpelling(ctx, content); err != nil {
		return nil, err
	}

	note := &domain.Note{
		UserID:    owner.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.notes.Insert(ctx, note)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", owner.ID).Msg("failed to insert note")
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(domain.AuthEvent{
			Username:  owner.Username,
			Action:    domain.AuditNoteCreated,
			Success:   true,
			Timestamp: created.CreatedAt,
		})
	}
	return created, nil
}

// ListNotes returns the notes owned by the authenticated user and nothing else.
func (s *NoteService) ListNotes(ctx context.Context, owner *domain.User) ([]*domain.Note, error) {
	return s.notes.FindByUserID(ctx, owner.ID)
}

// checkSpelling consults the cache, then the live speller. Verdicts are
// cached either way; a cache failure falls through to the live check.
func (s *NoteService) checkSpelling(ctx context.Context, content string) error {
	if s.cache != nil {
		if clean, found, err := s.cache.Get(ctx, content); err == nil && found {
			if clean {
				return nil
			}
			return domain.ErrSpellingErrors
		}
	}

	spellingErrs, err := s.speller.Check(ctx, content)
	if err != nil {
		s.logger.Error().Err(err).Msg("speller check failed")
		return domain.ErrSpellerUnavailable
	}

	clean := len(spellingErrs) == 0
	if s.cache != nil {
		if err := s.cache.Set(ctx, content, clean); err != nil {
			s.logger.Warn().Err(err).Msg("spell cache write failed")
		}
	}
	if !clean {
		return domain.ErrSpellingErrors
	}
	return nil
}
