package services

import (
	"errors"

	"findly/models"

	"gorm.io/gorm"
)

type ClueService struct {
	DB *gorm.DB
}

func NewClueService(db *gorm.DB) *ClueService {
	return &ClueService{DB: db}
}

type ClueInput struct {
	Text string `json:"text" form:"text"`
	Hint int    `json:"hint" form:"hint"`
}

func (s *ClueService) GetAll() ([]models.Clue, error) {
	var clues []models.Clue
	if err := s.DB.Order("hint asc").Find(&clues).Error; err != nil {
		return nil, err
	}
	return clues, nil
}

func (s *ClueService) GetByID(id uint) (*models.Clue, error) {
	var clue models.Clue
	if err := s.DB.First(&clue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clue, nil
}

func (s *ClueService) Create(in ClueInput) (*models.Clue, error) {
	clue := models.Clue{Text: in.Text, Hint: in.Hint}
	if err := s.DB.Create(&clue).Error; err != nil {
		return nil, err
	}
	return &clue, nil
}

func (s *ClueService) Update(id uint, in ClueInput) (bool, error) {
	values := map[string]interface{}{
		"text": in.Text,
		"hint": in.Hint,
	}
	res := s.DB.Model(&models.Clue{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *ClueService) Delete(id uint) (bool, error) {
	res := s.DB.Delete(&models.Clue{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ForGame returns a game's clues through the game_clues join, in join order.
func (s *ClueService) ForGame(gameID uint) ([]models.Clue, error) {
	var clues []models.Clue
	err := s.DB.
		Joins("INNER JOIN game_clues ON game_clues.clue_id = clues.id").
		Where("game_clues.game_id = ? AND game_clues.deleted_at IS NULL", gameID).
		Order("game_clues.clue_order asc").
		Find(&clues).Error
	if err != nil {
		return nil, err
	}
	return clues, nil
}
