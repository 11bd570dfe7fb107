package models

// Achievement is a point-gated award. A nil PointsRequired means the
// achievement can never be unlocked by the points filter.
type Achievement struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"not null"`
	Description    string `json:"description"`
	PointsRequired *int64 `json:"points_required"`

	Timestamps
}
