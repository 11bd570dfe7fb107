// models/game.go
package models

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Game struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Slug        string `json:"slug" gorm:"index"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`

	// The trivia solution. Never serialized — answer checking goes through
	// GameService.CheckAnswer.
	Answer string `json:"-"`

	CoverURL string `json:"cover_url,omitempty"`

	Timestamps
}
