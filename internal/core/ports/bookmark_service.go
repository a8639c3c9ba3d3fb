package ports

import (
	"context"

	"github.com/linkstash/bookmarks-api/internal/core/domain"
)

// CreateBookmarkInput carries the data needed to create a bookmark.
type CreateBookmarkInput struct {
	Title       string
	Link        string
	Description string
}

// EditBookmarkInput carries the partial fields of a bookmark update.
// Nil means "leave unchanged".
type EditBookmarkInput struct {
	Title       *string
	Link        *string
	Description *string
}

// BookmarkService defines the ownership-gated bookmark use-cases. Every
// operation is scoped to the calling user's id as resolved by the auth
// middleware, never to client-supplied identity.
type BookmarkService interface {
	ListBookmarks(ctx context.Context, userID uint) ([]domain.Bookmark, error)
	GetBookmark(ctx context.Context, userID, id uint) (*domain.Bookmark, error)
	CreateBookmark(ctx context.Context, userID uint, input CreateBookmarkInput) (*domain.Bookmark, error)
	EditBookmark(ctx context.Context, userID, id uint, input EditBookmarkInput) (*domain.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, id uint) error
}
