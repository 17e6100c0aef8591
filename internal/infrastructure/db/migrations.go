package db

import (
	"github.com/taskhub/backend/internal/domain"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		return err
	}

	return createCustomIndexes(db)
}

func createCustomIndexes(db *gorm.DB) error {
	// Composite index matching the default filter sort (created_at, id)
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tasks_created_at_id
		ON tasks (created_at, id)
	`).Error
}
