package ports

import (
	"context"

	"github.com/spellnotes/notes-api/internal/core/domain"
)

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuthEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}
