package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
//
// The username is the identity key used by rooms, memberships and ledger
// entries; the UUID is only the storage primary key.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique login name. Trimmed at signup.
	Username string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// Email is an optional address used for verification mail.
	Email string

	// Verified reports whether the email verification step completed.
	// Only meaningful when signup gating is enabled.
	Verified bool

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser builds a User with a fresh ID, a trimmed username and the
// current timestamp.
func NewUser(username, passwordHash, email string) *User {
	return &User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		Email:        strings.TrimSpace(email),
		CreatedAt:    time.Now().Unix(),
	}
}
