package models

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate registers the custom join tables and migrates every table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&PlayerProfile{}, "Positions", &PlayerPosition{}); err != nil {
		return fmt.Errorf("setup player_positions: %w", err)
	}
	if err := db.SetupJoinTable(&SchoolProfile{}, "Categories", &SchoolCategory{}); err != nil {
		return fmt.Errorf("setup school_categories: %w", err)
	}
	return db.AutoMigrate(
		&User{}, &VerificationToken{},
		&Position{}, &Category{},
		&SchoolProfile{}, &SchoolPost{},
		&PlayerProfile{}, &PlayerVideo{}, &PlayerAchievement{},
	)
}
