package domain

import "time"

// Credential is a stored login identity. PasswordHash is a bcrypt record;
// the plaintext password is never persisted or logged.
type Credential struct {
	ID           string    `json:"-"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
