package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/linkstash/bookmarks-api/internal/api/metrics"
	"github.com/linkstash/bookmarks-api/internal/core/domain"
	"github.com/linkstash/bookmarks-api/internal/core/ports"
)

// BookmarkService implements CRUD over bookmarks, every operation scoped
// to the calling user. Reads of foreign or absent bookmarks fail with
// ErrBookmarkNotFound, mutations with ErrBookmarkAccessDenied; in both
// cases the caller cannot tell which of the two it was.
type BookmarkService struct {
	repo   ports.BookmarkRepository
	logger zerolog.Logger
}

func NewBookmarkService(repo ports.BookmarkRepository, logger zerolog.Logger) *BookmarkService {
	return &BookmarkService{repo: repo, logger: logger}
}

func (s *BookmarkService) ListBookmarks(ctx context.Context, userID uint) ([]domain.Bookmark, error) {
	return s.repo.FindAllByUser(ctx, userID)
}

func (s *BookmarkService) GetBookmark(ctx context.Context, userID, id uint) (*domain.Bookmark, error) {
	return s.repo.FindByIDForUser(ctx, id, userID)
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, userID uint, input ports.CreateBookmarkInput) (*domain.Bookmark, error) {
	created, err := s.repo.Create(ctx, &domain.Bookmark{
		UserID:      userID,
		Title:       input.Title,
		Link:        input.Link,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("user_id", userID).Uint("bookmark_id", created.ID).Msg("bookmark created")
	metrics.BookmarkOpsTotal.WithLabelValues("create").Inc()
	return created, nil
}

// EditBookmark merges the non-nil fields into the stored bookmark after
// an ownership check. The repository's write is additionally constrained
// to the owner, so the check-then-write pair cannot race into a foreign
// mutation.
func (s *BookmarkService) EditBookmark(ctx context.Context, userID, id uint, input ports.EditBookmarkInput) (*domain.Bookmark, error) {
	bookmark, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookmarkNotFound) {
			return nil, domain.ErrBookmarkAccessDenied
		}
		return nil, err
	}
	if bookmark.UserID != userID {
		return nil, domain.ErrBookmarkAccessDenied
	}

	if input.Title != nil {
		bookmark.Title = *input.Title
	}
	if input.Link != nil {
		bookmark.Link = *input.Link
	}
	if input.Description != nil {
		bookmark.Description = *input.Description
	}

	updated, err := s.repo.Update(ctx, bookmark)
	if err != nil {
		return nil, err
	}

	metrics.BookmarkOpsTotal.WithLabelValues("update").Inc()
	return updated, nil
}

// DeleteBookmark permanently removes the bookmark after the same
// ownership check as EditBookmark. There is no soft delete.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, userID, id uint) error {
	bookmark, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookmarkNotFound) {
			return domain.ErrBookmarkAccessDenied
		}
		return err
	}
	if bookmark.UserID != userID {
		return domain.ErrBookmarkAccessDenied
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info().Uint("user_id", userID).Uint("bookmark_id", id).Msg("bookmark deleted")
	metrics.BookmarkOpsTotal.WithLabelValues("delete").Inc()
	return nil
}
