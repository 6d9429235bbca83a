package seeds

import (
	"log"

	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// RunAdminSeeder makes sure at least one administrator account exists, so a
// fresh deployment can log in and provision everything else. Controlled by
// SEED_ADMIN_* env vars; a missing password skips seeding entirely.
func RunAdminSeeder(db *gorm.DB) {
	username := configs.GetEnv("SEED_ADMIN_USERNAME", "admin")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD", "")
	email := configs.GetEnv("SEED_ADMIN_EMAIL", "admin@localhost")

	if password == "" {
		log.Println("[INFO] SEED_ADMIN_PASSWORD not set, skipping admin seeder")
		return
	}

	var cnt int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_name = ?", username).
		Count(&cnt).Error; err != nil {
		log.Printf("[ERROR] Admin seeder lookup failed: %v", err)
		return
	}
	if cnt > 0 {
		log.Printf("[INFO] Admin account %q already exists, skipping seeder", username)
		return
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("[ERROR] Admin seeder hash failed: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserName: username,
		Email:    email,
		Password: hashed,
		IsAdmin:  true,
		IsStaff:  true,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] Admin seeder create failed: %v", err)
		return
	}
	log.Printf("[SUCCESS] Seeded admin account %q", username)
}
