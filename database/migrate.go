package database

import (
	"gorm.io/gorm"

	"cafe-pos/models"
)

// AutoMigrate creates the schema and the open-session uniqueness backstop.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Floor{},
		&models.Table{},
		&models.TableSession{},
		&models.Category{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return err
	}

	// At most one open session per table. MySQL has no partial indexes, so
	// there the table lock in the occupancy service carries this alone;
	// SQLite gets the constraint at the store level as well.
	if db.Dialector.Name() == "sqlite" {
		if err := db.Exec(
			"CREATE UNIQUE INDEX IF NOT EXISTS idx_open_session_per_table " +
				"ON table_sessions(table_id) WHERE end_time IS NULL",
		).Error; err != nil {
			return err
		}
	}
	return nil
}
