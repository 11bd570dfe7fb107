package models

import "time"

// LeaderboardStanding is a denormalized mirror of users ranked by points.
// Recomputed by the standings worker; reads never touch the users table.
type LeaderboardStanding struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	UserID   uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Username string `json:"username"`
	Points   int64  `json:"points"`
	Rank     int    `json:"rank" gorm:"index"`

	SyncedAt time.Time `json:"synced_at" gorm:"autoUpdateTime"`
}
