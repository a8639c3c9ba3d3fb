package ports

import (
	"context"

	"github.com/linkstash/bookmarks-api/internal/core/domain"
)

// BookmarkRepository defines the persistence interface for bookmarks.
//
// Update and Delete are owner-guarded: the write is constrained to rows
// matching both the bookmark id and the owner id, so a concurrent owner
// change can never turn a passed ownership check into a foreign write.
// A guarded write that matches no row fails with
// domain.ErrBookmarkAccessDenied.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error)
	FindAllByUser(ctx context.Context, userID uint) ([]domain.Bookmark, error)
	// FindByIDForUser returns the bookmark only when it is owned by userID;
	// otherwise domain.ErrBookmarkNotFound.
	FindByIDForUser(ctx context.Context, id, userID uint) (*domain.Bookmark, error)
	// FindByID is the unscoped lookup used by the ownership check before a
	// mutation. Missing rows fail with domain.ErrBookmarkNotFound.
	FindByID(ctx context.Context, id uint) (*domain.Bookmark, error)
	Update(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error)
	Delete(ctx context.Context, id, userID uint) error
}
