package domain

import (
	"errors"
	"time"
)

// ErrBookmarkNotFound is returned on reads; ErrBookmarkAccessDenied on
// mutations. Both deliberately cover "absent" and "owned by someone else"
// so a caller cannot probe for another user's bookmarks.
var ErrBookmarkNotFound = errors.New("bookmark not found")
var ErrBookmarkAccessDenied = errors.New("access to resource denied")

// Bookmark is a saved link owned by exactly one user.
type Bookmark struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
