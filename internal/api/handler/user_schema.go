package handler

import (
	"time"

	"github.com/linkstash/bookmarks-api/internal/core/domain"
	"github.com/linkstash/bookmarks-api/internal/core/ports"
)

type editUserRequest struct {
	Email     *string `json:"email"      validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=120"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=120"`
}

// userResponse is the transport view of an account. There is no hash
// field here at all; the JSON contract cannot leak what the type cannot
// express.
type userResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toEditUserInput(req editUserRequest) ports.EditUserInput {
	return ports.EditUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}
