package services

import (
	"errors"
	"strings"

	"findly/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type GameService struct {
	DB *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{DB: db}
}

// GameInput carries the creatable/updatable game fields. The answer is
// accepted on input but never serialized back out (see models.Game).
type GameInput struct {
	Name        string `json:"name" form:"name"`
	Type        string `json:"type" form:"type"`
	Description string `json:"desc" form:"desc"`
	Difficulty  string `json:"diff" form:"diff"`
	Answer      string `json:"answer" form:"answer"`
}

func (s *GameService) GetAll() ([]models.Game, error) {
	var games []models.Game
	if err := s.DB.Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// GetByID returns (nil, nil) when no game exists with the given id.
func (s *GameService) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	if err := s.DB.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

func (s *GameService) Create(in GameInput) (*models.Game, error) {
	game := models.Game{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Type:        in.Type,
		Description: in.Description,
		Difficulty:  in.Difficulty,
		Answer:      in.Answer,
	}
	if err := s.DB.Create(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GameService) Update(id uint, in GameInput) (bool, error) {
	values := map[string]interface{}{
		"name":        in.Name,
		"slug":        slug.Make(in.Name),
		"type":        in.Type,
		"description": in.Description,
		"difficulty":  in.Difficulty,
	}
	if in.Answer != "" {
		values["answer"] = in.Answer
	}

	res := s.DB.Model(&models.Game{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GameService) Delete(id uint) (bool, error) {
	res := s.DB.Delete(&models.Game{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SetCover stores the uploaded cover image URL on the game.
func (s *GameService) SetCover(id uint, url string) (bool, error) {
	res := s.DB.Model(&models.Game{}).Where("id = ?", id).Update("cover_url", url)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CheckAnswer compares the submitted text against the stored solution.
// Comparison trims surrounding whitespace and ignores case — players type
// answers by hand. Returns false for an unknown game id.
func (s *GameService) CheckAnswer(id uint, answer string) (bool, error) {
	game, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if game == nil {
		return false, nil
	}
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(game.Answer)), nil
}
