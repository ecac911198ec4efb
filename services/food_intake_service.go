package services

import (
	"errors"

	"github.com/VictoriaKoe/NutriTrack/models"

	"gorm.io/gorm"
)

type FoodIntakeService struct {
	db *gorm.DB
}

func NewFoodIntakeService(db *gorm.DB) *FoodIntakeService {
	return &FoodIntakeService{db: db}
}

// GetByUserID returns the user's current questionnaire response, or
// (nil, nil) if they have not submitted one yet.
func (s *FoodIntakeService) GetByUserID(userID int) (*models.FoodIntake, error) {
	var intake models.FoodIntake
	err := s.db.First(&intake, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &intake, nil
}

// UpsertForUser stores a questionnaire submission. The first submission
// inserts; every later one updates the same row, so a user never accumulates
// multiple "current" responses. Check and write share one transaction.
func (s *FoodIntakeService) UpsertForUser(userID int, intake models.FoodIntake) error {
	intake.UserID = userID
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.FoodIntake
		err := tx.First(&existing, "user_id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			intake.FoodIntakeID = 0
			return tx.Create(&intake).Error
		}
		if err != nil {
			return err
		}
		intake.FoodIntakeID = existing.FoodIntakeID
		return tx.Save(&intake).Error
	})
}

// DeleteAll wipes the table. Test/reset use only.
func (s *FoodIntakeService) DeleteAll() error {
	return s.db.Where("1 = 1").Delete(&models.FoodIntake{}).Error
}
