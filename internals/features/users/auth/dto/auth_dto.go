package dto

import (
	"buildops_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// 🔹 Admin creates staff accounts
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	UserRole  string    `json:"user_role"`
	IsActive  bool      `json:"user_is_active"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// 🔹 Profile update (PATCH, own account)
type ProfileUpdateRequest struct {
	UserName *string `json:"user_name"`
	Password *string `json:"password"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID,
		UserName:  m.UserName,
		UserEmail: m.UserEmail,
		UserRole:  m.UserRole,
		IsActive:  m.UserIsActive,
	}
}
