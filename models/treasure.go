package models

type Treasure struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Points      int64  `json:"points" gorm:"default:0"`
	CoverURL    string `json:"cover_url,omitempty"`

	Timestamps
}

type Clue struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Text string `json:"text" gorm:"not null"`
	Hint int    `json:"hint" gorm:"default:0"` // display order among a game's clues

	Timestamps
}
