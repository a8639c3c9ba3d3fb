package ports

import (
	"context"

	"github.com/linkstash/bookmarks-api/internal/core/domain"
)

// UserRepository defines the persistence interface for accounts.
// Create and Update translate store-level uniqueness violations on the
// email column into domain.ErrCredentialsTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
