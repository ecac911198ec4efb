package services

import (
	"path/filepath"
	"testing"

	"github.com/VictoriaKoe/NutriTrack/config"
	"github.com/VictoriaKoe/NutriTrack/models"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func seedPatient(t *testing.T, db *gorm.DB, p models.Patient) {
	t.Helper()
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to seed patient %d: %v", p.UserID, err)
	}
}
