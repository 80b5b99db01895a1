package entity

import "gorm.io/gorm"

// AutoMigrate creates or updates all shop tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Vehicle{},
		&RepairOrder{},
	)
}
