// services/scheduler.go
package services

import (
	"log"
	"time"

	"findly/models"

	"github.com/go-co-op/gocron/v2"
)

// StartUnlockScheduler persists achievement unlocks in the background: every
// minute, any user whose points have crossed a threshold gets the matching
// user_achievements row. The profile page computes unlocks live; this sweep
// is what makes them durable (and queryable via /users-achievements).
func (s *AchievementService) StartUnlockScheduler() {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("[UnlockSweep] scheduler init failed: %v", err)
		return
	}
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			if err := s.SweepUnlocks(); err != nil {
				log.Printf("[UnlockSweep] %v", err)
			}
		}),
	)
}

// SweepUnlocks awards every user the thresholded achievements their points
// already cover, skipping pairs that were awarded before.
func (s *AchievementService) SweepUnlocks() error {
	var achievements []models.Achievement
	if err := s.DB.Where("points_required IS NOT NULL").Find(&achievements).Error; err != nil {
		return err
	}

	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return err
	}

	for _, u := range users {
		for _, a := range achievements {
			if a.PointsRequired == nil || *a.PointsRequired > u.Points {
				continue
			}
			var count int64
			s.DB.Model(&models.UserAchievement{}).
				Where("user_id = ? AND achievement_id = ?", u.ID, a.ID).
				Count(&count)
			if count > 0 {
				continue
			}
			link := models.UserAchievement{UserID: u.ID, AchievementID: a.ID}
			if err := s.DB.Create(&link).Error; err != nil {
				log.Printf("[UnlockSweep] Failed to award %q to user %d: %v", a.Name, u.ID, err)
			} else {
				log.Printf("🏆 Achievement unlocked: %s → user %d", a.Name, u.ID)
			}
		}
	}
	return nil
}
