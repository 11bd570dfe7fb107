package services

import (
	"errors"

	"findly/models"

	"gorm.io/gorm"
)

type AchievementService struct {
	DB *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{DB: db}
}

type AchievementInput struct {
	Name           string `json:"name" form:"name"`
	Description    string `json:"description" form:"description"`
	PointsRequired *int64 `json:"points_required" form:"points_required"`
}

func (s *AchievementService) GetAll() ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := s.DB.Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (s *AchievementService) GetByID(id uint) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := s.DB.First(&achievement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &achievement, nil
}

func (s *AchievementService) Create(in AchievementInput) (*models.Achievement, error) {
	achievement := models.Achievement{
		Name:           in.Name,
		Description:    in.Description,
		PointsRequired: in.PointsRequired,
	}
	if err := s.DB.Create(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (s *AchievementService) Update(id uint, in AchievementInput) (bool, error) {
	values := map[string]interface{}{
		"name":            in.Name,
		"description":     in.Description,
		"points_required": in.PointsRequired,
	}
	res := s.DB.Model(&models.Achievement{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *AchievementService) Delete(id uint) (bool, error) {
	res := s.DB.Delete(&models.Achievement{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UnlockedFor filters the full achievement list down to the ones a user with
// the given points has earned. A nil threshold never unlocks.
func (s *AchievementService) UnlockedFor(points int64) ([]models.Achievement, error) {
	achievements, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	unlocked := make([]models.Achievement, 0, len(achievements))
	for _, a := range achievements {
		if a.PointsRequired == nil {
			continue
		}
		if *a.PointsRequired <= points {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked, nil
}
