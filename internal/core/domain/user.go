package domain

import "time"

// User models a registered account. Username is immutable and unique across
// all users; PasswordHash holds the bcrypt digest, never the plaintext.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
