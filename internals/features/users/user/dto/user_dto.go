package dto

import (
	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

// UserLite is the read-only account summary nested inside profile
// representations.
type UserLite struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func FromUserModel(u *userModel.UserModel) *UserLite {
	if u == nil {
		return nil
	}
	return &UserLite{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
