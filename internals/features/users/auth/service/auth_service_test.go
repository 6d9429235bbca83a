package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/configs"
	blacklistModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	"sekolahku_backend/internals/testutil"
)

func TestLoginAndLogout(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := testutil.OpenTestDB(t)

	hashed, err := HashPassword("password123")
	require.NoError(t, err)
	user := userModel.UserModel{
		UserName: "andi",
		Email:    "andi@test.local",
		Password: hashed,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)

	token, loggedIn, err := Login(db, "andi", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	require.NoError(t, Logout(db, token))

	var cnt int64
	require.NoError(t, db.Model(&blacklistModel.TokenBlacklistModel{}).
		Where("token = ?", token).
		Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestLoginWrongPassword(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := testutil.OpenTestDB(t)

	hashed, err := HashPassword("password123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&userModel.UserModel{
		UserName: "budi",
		Email:    "budi@test.local",
		Password: hashed,
		IsActive: true,
	}).Error)

	_, _, err = Login(db, "budi", "wrong-password")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)

	// unknown usernames get the same answer as wrong passwords
	_, _, err = Login(db, "nobody", "password123")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := testutil.OpenTestDB(t)

	hashed, err := HashPassword("password123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&userModel.UserModel{
		UserName: "cici",
		Email:    "cici@test.local",
		Password: hashed,
		IsActive: false,
	}).Error)

	_, _, err = Login(db, "cici", "password123")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}
