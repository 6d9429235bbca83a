package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "sekolahku_backend/internals/features/users/auth/dto"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userDTO "sekolahku_backend/internals/features/users/user/dto"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	token, user, err := authService.Login(ac.DB, req.Username, req.Password)
	if err != nil {
		return err
	}

	role, err := helperAuth.ResolveRole(ac.DB, user.ID)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] Login user=%s role=%s", user.UserName, role.Kind)
	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		User:        userDTO.FromUserModel(user),
		Role:        string(role.Kind),
	})
}

// POST /api/logout (authenticated)
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, ok := c.Locals("token_string").(string)
	if !ok || tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := authService.Logout(ac.DB, tokenString); err != nil {
		return err
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/u/me (account summary + resolved role)
func (ac *AuthController) Me(c *fiber.Ctx) error {
	role, err := helperAuth.RoleFromCtx(c, ac.DB)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"user": userDTO.FromUserModel(role.User),
		"role": string(role.Kind),
	})
}
