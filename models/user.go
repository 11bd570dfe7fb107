package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the registered player account. The password column holds a bcrypt
// hash, never the clear text.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Email    string `json:"email"`
	Password string `json:"-" gorm:"not null"`
	Points   int64  `json:"points" gorm:"default:0"`
	Rewards  string `json:"rewards" gorm:"type:jsonb;default:'[]'"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
