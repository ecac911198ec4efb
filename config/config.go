package config

import (
	"log"
	"os"

	"github.com/VictoriaKoe/NutriTrack/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open connects to the sqlite database at path and migrates the schema.
// Foreign keys are off by default in sqlite, so the pragma rides in the DSN.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Patient{},
		&models.FoodIntake{},
		&models.NutriCoachTip{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// InitDB opens the application database (DB_PATH, default nutritrack.db)
// and stores the handle in the package-level DB.
func InitDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "nutritrack.db"
	}

	db, err := Open(path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	DB = db
}
