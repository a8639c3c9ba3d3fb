package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/linkstash/bookmarks-api/internal/core/domain"
	"github.com/linkstash/bookmarks-api/internal/core/ports"
)

// UserService implements profile reads and edits for the authenticated
// account. The id always comes from a validated token, never from the
// request body, so there is no ownership ambiguity to check here.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// EditUser applies a partial profile update. The password cannot be
// changed here; an email change goes back through the store's unique
// index and can fail with ErrCredentialsTaken.
func (s *UserService) EditUser(ctx context.Context, id uint, input ports.EditUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("user_id", id).Msg("user profile updated")
	return updated, nil
}
