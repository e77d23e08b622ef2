package user

import (
	"errors"
	"time"
)

var (
	// ErrNotFound's text is part of the HTTP contract.
	ErrNotFound       = errors.New("User not found")
	ErrEmailTaken     = errors.New("Email already registered")
	ErrBadCredentials = errors.New("Invalid email or password")
)

// User maps to the users table. PasswordHash is a bcrypt digest and never
// leaves the server.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
