// services/link_service.go
package services

import (
	"errors"

	"findly/models"

	"gorm.io/gorm"
)

// LinkService wraps CRUD for the four association tables. They are plain
// peer entities: no domain rules beyond what the unlock sweep adds on top
// of user_achievements.
type LinkService struct {
	DB *gorm.DB
}

func NewLinkService(db *gorm.DB) *LinkService {
	return &LinkService{DB: db}
}

// --- game_users ---

func (s *LinkService) GetAllGameUsers() ([]models.GameUser, error) {
	var links []models.GameUser
	if err := s.DB.Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *LinkService) GetGameUserByID(id uint) (*models.GameUser, error) {
	var link models.GameUser
	if err := s.DB.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (s *LinkService) CreateGameUser(link *models.GameUser) error {
	return s.DB.Create(link).Error
}

func (s *LinkService) UpdateGameUser(id uint, link models.GameUser) (bool, error) {
	res := s.DB.Model(&models.GameUser{}).Where("id = ?", id).Updates(map[string]interface{}{
		"game_id": link.GameID,
		"user_id": link.UserID,
		"score":   link.Score,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *LinkService) DeleteGameUser(id uint) (bool, error) {
	res := s.DB.Delete(&models.GameUser{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --- user_treasures ---

func (s *LinkService) GetAllUserTreasures() ([]models.UserTreasure, error) {
	var links []models.UserTreasure
	if err := s.DB.Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *LinkService) GetUserTreasureByID(id uint) (*models.UserTreasure, error) {
	var link models.UserTreasure
	if err := s.DB.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (s *LinkService) CreateUserTreasure(link *models.UserTreasure) error {
	return s.DB.Create(link).Error
}

func (s *LinkService) UpdateUserTreasure(id uint, link models.UserTreasure) (bool, error) {
	res := s.DB.Model(&models.UserTreasure{}).Where("id = ?", id).Updates(map[string]interface{}{
		"user_id":     link.UserID,
		"treasure_id": link.TreasureID,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *LinkService) DeleteUserTreasure(id uint) (bool, error) {
	res := s.DB.Delete(&models.UserTreasure{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --- user_achievements ---

func (s *LinkService) GetAllUserAchievements() ([]models.UserAchievement, error) {
	var links []models.UserAchievement
	if err := s.DB.Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *LinkService) GetUserAchievementByID(id uint) (*models.UserAchievement, error) {
	var link models.UserAchievement
	if err := s.DB.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (s *LinkService) CreateUserAchievement(link *models.UserAchievement) error {
	return s.DB.Create(link).Error
}

func (s *LinkService) UpdateUserAchievement(id uint, link models.UserAchievement) (bool, error) {
	res := s.DB.Model(&models.UserAchievement{}).Where("id = ?", id).Updates(map[string]interface{}{
		"user_id":        link.UserID,
		"achievement_id": link.AchievementID,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *LinkService) DeleteUserAchievement(id uint) (bool, error) {
	res := s.DB.Delete(&models.UserAchievement{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --- game_clues ---

func (s *LinkService) GetAllGameClues() ([]models.GameClue, error) {
	var links []models.GameClue
	if err := s.DB.Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *LinkService) GetGameClueByID(id uint) (*models.GameClue, error) {
	var link models.GameClue
	if err := s.DB.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (s *LinkService) CreateGameClue(link *models.GameClue) error {
	return s.DB.Create(link).Error
}

func (s *LinkService) UpdateGameClue(id uint, link models.GameClue) (bool, error) {
	res := s.DB.Model(&models.GameClue{}).Where("id = ?", id).Updates(map[string]interface{}{
		"game_id":    link.GameID,
		"clue_id":    link.ClueID,
		"clue_order": link.Order,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *LinkService) DeleteGameClue(id uint) (bool, error) {
	res := s.DB.Delete(&models.GameClue{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
