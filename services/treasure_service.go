package services

import (
	"errors"

	"findly/models"

	"gorm.io/gorm"
)

type TreasureService struct {
	DB *gorm.DB
}

func NewTreasureService(db *gorm.DB) *TreasureService {
	return &TreasureService{DB: db}
}

type TreasureInput struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Location    string `json:"location" form:"location"`
	Points      int64  `json:"points" form:"points"`
}

func (s *TreasureService) GetAll() ([]models.Treasure, error) {
	var treasures []models.Treasure
	if err := s.DB.Find(&treasures).Error; err != nil {
		return nil, err
	}
	return treasures, nil
}

func (s *TreasureService) GetByID(id uint) (*models.Treasure, error) {
	var treasure models.Treasure
	if err := s.DB.First(&treasure, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &treasure, nil
}

func (s *TreasureService) Create(in TreasureInput) (*models.Treasure, error) {
	treasure := models.Treasure{
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
		Points:      in.Points,
	}
	if err := s.DB.Create(&treasure).Error; err != nil {
		return nil, err
	}
	return &treasure, nil
}

func (s *TreasureService) Update(id uint, in TreasureInput) (bool, error) {
	values := map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"location":    in.Location,
		"points":      in.Points,
	}
	res := s.DB.Model(&models.Treasure{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *TreasureService) Delete(id uint) (bool, error) {
	res := s.DB.Delete(&models.Treasure{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *TreasureService) SetCover(id uint, url string) (bool, error) {
	res := s.DB.Model(&models.Treasure{}).Where("id = ?", id).Update("cover_url", url)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
