package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	blacklistModel "sekolahku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler periodically deletes blacklist rows whose
// tokens have expired anyway.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where("expires_at < ?", time.Now()).
				Delete(&blacklistModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[ERROR] blacklist cleanup: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup removed %d expired tokens", res.RowsAffected)
			}
		}
	}()
}
