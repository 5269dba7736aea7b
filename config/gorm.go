package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var gormDB *gorm.DB

// BootGorm opens the gorm connection the reference-entity repositories
// and the login lookup run on.
func BootGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	db, err := gorm.Open(postgres.Open(GetDatabaseURL()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	gormDB = db
	return gormDB, nil
}
