package services

import (
	"errors"
	"fmt"

	"github.com/VictoriaKoe/NutriTrack/models"
	"github.com/VictoriaKoe/NutriTrack/utils"

	"gorm.io/gorm"
)

var (
	// ErrAlreadyRegistered is returned when a claim attempt targets a
	// patient record that has already been claimed. Registration is one-way.
	ErrAlreadyRegistered = errors.New("account has already been registered")

	// ErrCredentialMismatch is returned when the id/phone pair does not
	// match the seeded record. This is an expected outcome, not a fault.
	ErrCredentialMismatch = errors.New("ID and phone number do not match")
)

type PatientService struct {
	db *gorm.DB
}

func NewPatientService(db *gorm.DB) *PatientService {
	return &PatientService{db: db}
}

// GetPatientByID looks up one patient. A missing id yields (nil, nil) —
// login and registration probe ids that may not exist, so not-found is a
// normal result everywhere in the app.
func (s *PatientService) GetPatientByID(userID int) (*models.Patient, error) {
	var patient models.Patient
	err := s.db.First(&patient, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *PatientService) GetAllPatients() ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.db.Order("user_id asc").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// UnregisteredIDs feeds the registration dropdown: seeded users who have not
// claimed their account yet.
func (s *PatientService) UnregisteredIDs() ([]int, error) {
	return s.idsWhere("is_registered = ?", false)
}

// RegisteredIDs feeds the login dropdown.
func (s *PatientService) RegisteredIDs() ([]int, error) {
	return s.idsWhere("is_registered = ?", true)
}

func (s *PatientService) idsWhere(query string, arg any) ([]int, error) {
	var ids []int
	err := s.db.Model(&models.Patient{}).Where(query, arg).
		Order("user_id asc").Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// PhoneNumbers returns every seeded phone number, for the registration
// screen's inline phone validation.
func (s *PatientService) PhoneNumbers() ([]string, error) {
	var phones []string
	if err := s.db.Model(&models.Patient{}).Pluck("phone_number", &phones).Error; err != nil {
		return nil, err
	}
	return phones, nil
}

func (s *PatientService) PatientCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Patient{}).Count(&count).Error
	return count, err
}

// Register claims a seeded patient record: the supplied id and phone number
// must match an existing unclaimed row. On success the username and hashed
// password are stored and the record is marked registered for good.
func (s *PatientService) Register(userID int, phoneNumber, username, password string) error {
	patient, err := s.GetPatientByID(userID)
	if err != nil {
		return err
	}
	if patient == nil || patient.PhoneNumber != phoneNumber {
		return ErrCredentialMismatch
	}
	if patient.IsRegistered {
		return ErrAlreadyRegistered
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return s.db.Model(&models.Patient{}).Where("user_id = ?", userID).
		Updates(map[string]any{
			"username":           username,
			"password":           hash,
			"is_registered":      true,
			"is_first_time_user": false,
		}).Error
}

// Authenticate checks a login attempt. A wrong password or unknown id is a
// plain false, not an error.
func (s *PatientService) Authenticate(userID int, password string) (bool, error) {
	patient, err := s.GetPatientByID(userID)
	if err != nil {
		return false, err
	}
	if patient == nil || !patient.IsRegistered {
		return false, nil
	}
	return utils.CheckPasswordHash(password, patient.Password), nil
}

// AverageTotalScore returns the mean total HEIFA score over all patients of
// the given gender. With no matching rows it returns 0.0 — never NaN, which
// would leak into formatted output.
func (s *PatientService) AverageTotalScore(gender string) (float64, error) {
	var avg *float64
	err := s.db.Model(&models.Patient{}).Where("gender = ?", gender).
		Select("AVG(total_heifa_score)").Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("average score query: %w", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// DeleteAllPatients wipes the table. Test/reset use only; cascades to food
// intake responses and saved tips.
func (s *PatientService) DeleteAllPatients() error {
	return s.db.Where("1 = 1").Delete(&models.Patient{}).Error
}
