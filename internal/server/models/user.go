package models

import "time"

// User is one registered account as persisted by the credential store.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
