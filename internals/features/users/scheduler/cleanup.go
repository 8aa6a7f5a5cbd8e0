package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/users/model"
)

// StartTokenCleanupScheduler prunes expired blacklist rows and stale
// refresh/reset tokens once a day.
func StartTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] pruning expired tokens...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expired []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expired).Error; err != nil {
				log.Printf("[CLEANUP ERROR] blacklist fetch: %v", err)
			} else if len(expired) > 0 {
				if err := db.Delete(&expired).Error; err != nil {
					log.Printf("[CLEANUP ERROR] blacklist delete: %v", err)
				} else {
					log.Printf("[CLEANUP] %d blacklisted tokens removed", len(expired))
				}
			}

			if err := db.
				Where("expires_at < ?", deleteBefore).
				Delete(&model.RefreshToken{}).Error; err != nil {
				log.Printf("[CLEANUP ERROR] refresh tokens: %v", err)
			}
			if err := db.
				Where("expires_at < ?", deleteBefore).
				Delete(&model.PasswordResetToken{}).Error; err != nil {
				log.Printf("[CLEANUP ERROR] reset tokens: %v", err)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
