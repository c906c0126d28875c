package domain

import "time"

// Audit actions recorded for authentication activity.
const (
	AuditRegister    = "register"
	AuditLogin       = "login"
	AuditTokenCheck  = "token_check"
	AuditNoteCreated = "note_created"
)

// AuthEvent is a single audit trail entry for an authentication-related action.
type AuthEvent struct {
	Username  string
	Action    string
	Success   bool
	Timestamp time.Time
}
