package handler

import (
	"time"

	"github.com/linkstash/bookmarks-api/internal/core/domain"
	"github.com/linkstash/bookmarks-api/internal/core/ports"
)

type createBookmarkRequest struct {
	Title       string `json:"title"       validate:"required"`
	Link        string `json:"link"        validate:"required"`
	Description string `json:"description"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Link        *string `json:"link"        validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

type bookmarkResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCreateBookmarkInput(req createBookmarkRequest) ports.CreateBookmarkInput {
	return ports.CreateBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}
}

func toEditBookmarkInput(req editBookmarkRequest) ports.EditBookmarkInput {
	return ports.EditBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}
}

func toBookmarkResponse(b *domain.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt.UTC(),
		UpdatedAt:   b.UpdatedAt.UTC(),
	}
}

func toBookmarkListResponse(items []domain.Bookmark) []bookmarkResponse {
	out := make([]bookmarkResponse, len(items))
	for i := range items {
		out[i] = toBookmarkResponse(&items[i])
	}
	return out
}
