package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/linkstash/bookmarks-api/internal/core/domain"
)

// BookmarkRepository persists bookmarks. Mutations are owner-guarded at
// the SQL level: the WHERE clause constrains both id and user_id, so zero
// affected rows means the bookmark is absent or foreign.
type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error) {
	if err := r.db.WithContext(ctx).Create(bookmark).Error; err != nil {
		return nil, fmt.Errorf("insert bookmark: %w", err)
	}
	return bookmark, nil
}

func (r *BookmarkRepository) FindAllByUser(ctx context.Context, userID uint) ([]domain.Bookmark, error) {
	bookmarks := make([]domain.Bookmark, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&bookmarks).Error; err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *BookmarkRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*domain.Bookmark, error) {
	var bookmark domain.Bookmark
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("find bookmark: %w", err)
	}
	return &bookmark, nil
}

func (r *BookmarkRepository) FindByID(ctx context.Context, id uint) (*domain.Bookmark, error) {
	var bookmark domain.Bookmark
	if err := r.db.WithContext(ctx).First(&bookmark, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("find bookmark: %w", err)
	}
	return &bookmark, nil
}

// Update writes title, link, and description, constrained to the owning
// user. Select forces zero values (an emptied description) through.
func (r *BookmarkRepository) Update(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Bookmark{}).
		Where("id = ? AND user_id = ?", bookmark.ID, bookmark.UserID).
		Select("title", "link", "description").
		Updates(bookmark)
	if res.Error != nil {
		return nil, fmt.Errorf("update bookmark: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrBookmarkAccessDenied
	}

	return r.FindByIDForUser(ctx, bookmark.ID, bookmark.UserID)
}

func (r *BookmarkRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Bookmark{})
	if res.Error != nil {
		return fmt.Errorf("delete bookmark: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookmarkAccessDenied
	}
	return nil
}
