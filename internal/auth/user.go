package auth

import "time"

// User is a stored account as read from the credential store.
// PasswordHash never leaves the server.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
