package services

import (
	"findly/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaderboardService struct {
	DB *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{DB: db}
}

// Standings reads the ranked mirror table. If the mirror has never been
// built (fresh boot, worker not fired yet) it rebuilds on demand.
func (s *LeaderboardService) Standings(limit int) ([]models.LeaderboardStanding, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var standings []models.LeaderboardStanding
	if err := s.DB.Order("rank asc").Limit(limit).Find(&standings).Error; err != nil {
		return nil, err
	}
	if len(standings) == 0 {
		if err := s.Rebuild(); err != nil {
			return nil, err
		}
		if err := s.DB.Order("rank asc").Limit(limit).Find(&standings).Error; err != nil {
			return nil, err
		}
	}
	return standings, nil
}

// Rebuild recomputes every standing from the users table. Ties break on
// name so ranks stay stable between sweeps.
func (s *LeaderboardService) Rebuild() error {
	var users []models.User
	if err := s.DB.Order("points desc, name asc").Find(&users).Error; err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i, u := range users {
			standing := models.LeaderboardStanding{
				UserID:   u.ID,
				Username: u.Name,
				Points:   u.Points,
				Rank:     i + 1,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"username", "points", "rank", "synced_at"}),
			}).Create(&standing).Error
			if err != nil {
				return err
			}
		}

		// Drop standings for users that no longer exist.
		var ids []uint
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		if len(ids) == 0 {
			return tx.Where("1 = 1").Delete(&models.LeaderboardStanding{}).Error
		}
		return tx.Where("user_id NOT IN ?", ids).Delete(&models.LeaderboardStanding{}).Error
	})
}
