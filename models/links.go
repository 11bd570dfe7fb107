// models/links.go
package models

import "time"

// Join-table records linking the primary entities. Each gets its own CRUD
// route group; UserAchievement is also written by the unlock sweep.

type GameUser struct {
	ID     uint  `json:"id" gorm:"primaryKey"`
	GameID uint  `json:"game_id" gorm:"index;not null"`
	UserID uint  `json:"user_id" gorm:"index;not null"`
	Score  int64 `json:"score" gorm:"default:0"`

	Timestamps
}

type UserTreasure struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	TreasureID uint      `json:"treasure_id" gorm:"index;not null"`
	FoundAt    time.Time `json:"found_at" gorm:"autoCreateTime"`

	Timestamps
}

type UserAchievement struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"index:idx_user_achievement,unique;not null"`
	AchievementID uint      `json:"achievement_id" gorm:"index:idx_user_achievement,unique;not null"`
	AwardedAt     time.Time `json:"awarded_at" gorm:"autoCreateTime"`

	Timestamps
}

type GameClue struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	GameID uint `json:"game_id" gorm:"index;not null"`
	ClueID uint `json:"clue_id" gorm:"index;not null"`
	Order  int  `json:"order" gorm:"column:clue_order;default:0"`

	Timestamps
}
