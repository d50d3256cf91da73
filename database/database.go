package database

import (
	"log"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/YairCer/iglesia-app/config"
	"github.com/YairCer/iglesia-app/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(dialector(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

// dialector picks the driver from the URL scheme; anything that is not a
// Postgres URL is treated as a SQLite file path.
func dialector(url string) gorm.Dialector {
	if strings.HasPrefix(url, "postgresql://") {
		return postgres.Open(url)
	}
	return sqlite.Open(url)
}

// Migrate creates/updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Member{},
	)
}
