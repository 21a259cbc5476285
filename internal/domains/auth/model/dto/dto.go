package dto

import (
	"time"

	userModel "localmarket/internal/domains/user/model"
	userDto "localmarket/internal/domains/user/model/dto"
	gModel "localmarket/shared/model"
)

type RegisterRequest struct {
	Email    string  `json:"email"    validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Name     string  `json:"name"     validate:"required,max=255"`
	Phone    *string `json:"phone"    validate:"omitempty,max=20"`
}

func (r *RegisterRequest) ToModel(passwordHash string) userModel.User {
	now := time.Now().UTC()

	return userModel.User{
		Email:        r.Email,
		PasswordHash: passwordHash,
		Name:         r.Name,
		Phone:        r.Phone,
		Location:     userModel.DefaultLocation,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Message string               `json:"message"`
	User    userDto.UserResponse `json:"user"`
	Token   string               `json:"token"`
}
