package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	blacklistModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

const accessTokenTTL = 24 * time.Hour

func buildAccessClaims(user *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"is_admin":  user.IsAdmin,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
}

// Login verifies the credentials and issues a signed access token.
func Login(db *gorm.DB, username, password string) (string, *userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "user_name = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
		}
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up user")
	}
	if !user.IsActive {
		return "", nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}
	if err := CheckPasswordHash(user.Password, password); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}

	if configs.JWTSecret == "" {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(&user, time.Now())).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return token, &user, nil
}

// Logout blacklists the presented token until its own expiry.
func Logout(db *gorm.DB, tokenString string) error {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}

	entry := blacklistModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to revoke token")
	}
	return nil
}
