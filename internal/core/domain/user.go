package domain

import (
	"errors"
	"time"
)

// ErrInvalidCredentials covers both "unknown email" and "wrong password" so
// that signin failures are not enumerable.
var ErrInvalidCredentials = errors.New("credentials incorrect")

var ErrCredentialsTaken = errors.New("credentials taken")
var ErrUserNotFound = errors.New("user not found")
var ErrTooManyAttempts = errors.New("too many signin attempts")

// User models a registered account. The password hash never leaves the
// process: it is excluded from JSON and stripped before the user is
// attached to a request context.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
