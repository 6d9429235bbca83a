package dto

import (
	userDTO "sekolahku_backend/internals/features/users/user/dto"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        *userDTO.UserLite `json:"user"`
	Role        string            `json:"role"`
}
