package services

import (
	"github.com/VictoriaKoe/NutriTrack/models"

	"gorm.io/gorm"
)

type TipService struct {
	db *gorm.DB
}

func NewTipService(db *gorm.DB) *TipService {
	return &TipService{db: db}
}

// SaveTip appends a generated tip to the user's log. Deliberately not
// idempotent: saving the same text twice records two rows, matching the
// append-only contract (duplicate guarding lives in the client).
func (s *TipService) SaveTip(userID int, generatedResponse string) (*models.NutriCoachTip, error) {
	tip := models.NutriCoachTip{
		GeneratedResponse: generatedResponse,
		UserID:            userID,
	}
	if err := s.db.Create(&tip).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}

// ListByUser returns all tips the user has saved, oldest first.
func (s *TipService) ListByUser(userID int) ([]models.NutriCoachTip, error) {
	var tips []models.NutriCoachTip
	err := s.db.Where("user_id = ?", userID).Order("tip_id asc").Find(&tips).Error
	if err != nil {
		return nil, err
	}
	return tips, nil
}

// DeleteAll wipes the log. Test/reset use only.
func (s *TipService) DeleteAll() error {
	return s.db.Where("1 = 1").Delete(&models.NutriCoachTip{}).Error
}
