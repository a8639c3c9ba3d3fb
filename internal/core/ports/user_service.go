package ports

import (
	"context"

	"github.com/linkstash/bookmarks-api/internal/core/domain"
)

// EditUserInput carries the optional profile fields of a PATCH /users call.
// Nil means "leave unchanged".
type EditUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserService defines profile use-cases for the authenticated account.
// Credentials are out of scope here: the password cannot be changed
// through this surface.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*domain.User, error)
	EditUser(ctx context.Context, id uint, input EditUserInput) (*domain.User, error)
}
