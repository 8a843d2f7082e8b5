package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"campground/internal/customers"
	"campground/internal/reservations"
	"campground/internal/settings"
	"campground/internal/spots"
	"campground/internal/users"
)

// SchemaVersion is the schema this build reads and writes. Bump it with any
// migration that older builds cannot serve.
const SchemaVersion = 1

type schemaInfo struct {
	ID        int       `gorm:"primaryKey;default:1"`
	Version   int       `gorm:"not null"`
	UpdatedAt time.Time
}

func (schemaInfo) TableName() string {
	return "schema_info"
}

// Migrate brings the schema up to date and records the version. A stored
// version newer than this build is fatal at startup; requests never probe or
// retry against an unknown schema.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 backs every primary key default.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(&schemaInfo{}); err != nil {
		return fmt.Errorf("failed to migrate schema_info: %w", err)
	}

	var info schemaInfo
	err := db.First(&info, "id = ?", 1).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fresh database
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	case info.Version > SchemaVersion:
		return fmt.Errorf("database schema version %d is newer than supported version %d", info.Version, SchemaVersion)
	}

	err = db.AutoMigrate(
		&users.User{},
		&customers.Customer{},
		&spots.Spot{},
		&reservations.Reservation{},
		&reservations.Note{},
		&settings.AppSettings{},
	)
	if err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	if err := MigrateConstraints(db); err != nil {
		return fmt.Errorf("failed to apply constraints: %w", err)
	}

	info.ID = 1
	info.Version = SchemaVersion
	if err := db.Save(&info).Error; err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}
