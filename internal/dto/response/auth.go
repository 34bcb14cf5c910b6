package response

import (
	"time"

	"travel-backoffice/internal/data/entity"
)

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Phone    *string         `json:"phone,omitempty"`
	Role     entity.UserRole `json:"role"`
	IsStaff  bool            `json:"is_staff"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role,
		IsStaff:  user.IsStaff(),
	}
}
