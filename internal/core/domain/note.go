package domain

import "time"

// Note is a text note owned by exactly one user. Notes are append-only in
// this system: no update or delete operations exist.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// SpellingError is a single error entry reported by the spelling service.
type SpellingError struct {
	Word        string   `json:"word"`
	Position    int      `json:"pos"`
	Suggestions []string `json:"s,omitempty"`
}
