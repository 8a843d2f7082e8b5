package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints installs the composite indexes AutoMigrate does not
// cover: they back the daily movement sheets and the availability queries.
func MigrateConstraints(db *gorm.DB) error {
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_spot_dates
		ON reservations (spot_id, check_in, check_out);
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_status_check_in
		ON reservations (status, check_in);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
