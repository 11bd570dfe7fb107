package testhelpers

import (
	"fmt"
	"testing"

	"findly/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB creates an isolated in-memory SQLite database for tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Achievement{},
		&models.Treasure{},
		&models.Clue{},
		&models.GameUser{},
		&models.UserTreasure{},
		&models.UserAchievement{},
		&models.GameClue{},
		&models.LeaderboardStanding{},
	); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	return db
}
