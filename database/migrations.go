package database

import (
	"log"

	"taskforge/taskforge/models"

	"gorm.io/gorm"
)

// RunMigrations runs database migrations to ensure tables are up to date
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Project{},
		&models.ProjectShare{},
		&models.Task{},
		&models.Comment{},
		&models.Notification{},
	)

	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	// At most one non-completed task per user. The creation gate checks this
	// inside a transaction; the index makes the invariant hold under
	// concurrent creations as well. Partial indexes are postgres-only.
	if db.Dialector.Name() == "postgres" {
		err = db.Exec(
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_one_active_per_user
			 ON tasks (user_id) WHERE status <> 'completed'`,
		).Error
		if err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	return nil
}
