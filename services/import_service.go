package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/VictoriaKoe/NutriTrack/models"

	"gorm.io/gorm"
)

// ErrImport wraps failures that abort the whole import: unreadable source,
// missing header, or neither total-score column present.
var ErrImport = errors.New("import failed")

// RawUserRow is the intermediate form of one CSV data row before it becomes
// a Patient.
type RawUserRow struct {
	UserID      int
	PhoneNumber string
	Gender      string
	Scores      FoodCategoryScore
}

type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// LoadPatientRows parses the HEIFA dataset. Layout: header row, then one row
// per user with phone number, user id and sex in the first three columns and
// all score columns resolved by header name. Rows that cannot be scored
// (bad gender, missing total, incomplete categories) are logged and skipped;
// the import continues with the rest.
func LoadPatientRows(r io.Reader) ([]RawUserRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headerRecord, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header row: %v", ErrImport, err)
	}

	header := make(map[string]int, len(headerRecord))
	for i, name := range headerRecord {
		header[strings.TrimSpace(name)] = i
	}

	// Without at least one total-score column no row could ever import.
	_, hasMale := header["HEIFAtotalscore"+models.GenderMale]
	_, hasFemale := header["HEIFAtotalscore"+models.GenderFemale]
	if !hasMale && !hasFemale {
		return nil, fmt.Errorf("%w: no HEIFAtotalscore column in header", ErrImport)
	}

	var rows []RawUserRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("import: skipping line %d: %v", line, err)
			continue
		}
		if len(record) < 3 {
			log.Printf("import: skipping line %d: too few columns", line)
			continue
		}

		phone := strings.TrimSpace(record[0])
		idField := strings.TrimSpace(record[1])
		userID, err := strconv.Atoi(idField)
		if err != nil {
			log.Printf("import: skipping line %d: user id %q is not numeric", line, idField)
			continue
		}

		gender, err := NormalizeGender(record[2])
		if err != nil {
			log.Printf("import: skipping line %d (user %d): %v", line, userID, err)
			continue
		}

		scores, err := AggregateScores(header, record, gender)
		if err != nil {
			log.Printf("import: skipping line %d (user %d): %v", line, userID, err)
			continue
		}
		// A zero-filled category would corrupt dashboards and averages, so
		// an incomplete score map disqualifies the row.
		if len(scores.ByCategory) != len(FoodCategories) {
			log.Printf("import: skipping line %d (user %d): %d of %d category scores resolved",
				line, userID, len(scores.ByCategory), len(FoodCategories))
			continue
		}

		rows = append(rows, RawUserRow{
			UserID:      userID,
			PhoneNumber: phone,
			Gender:      gender,
			Scores:      scores,
		})
	}

	return rows, nil
}

// PatientFromRow converts a parsed row into the Patient entity. New patients
// start unregistered and flagged as first-time users.
func PatientFromRow(row RawUserRow) models.Patient {
	scores := row.Scores.ByCategory
	return models.Patient{
		UserID:          row.UserID,
		PhoneNumber:     row.PhoneNumber,
		Gender:          row.Gender,
		IsFirstTimeUser: true,
		IsRegistered:    false,

		TotalHEIFAScore:               row.Scores.Total,
		DiscretionaryHEIFAScore:       scores["Discretionary"],
		VegetableHEIFAScore:           scores["Vegetables"],
		FruitHEIFAScore:               scores["Fruit"],
		GrainsAndCerealsHEIFAScore:    scores["Grainsandcereals"],
		WholeGrainsHEIFAScore:         scores["Wholegrains"],
		MeatAndAlternativesHEIFAScore: scores["Meatandalternatives"],
		SodiumHEIFAScore:              scores["Sodium"],
		AlcoholHEIFAScore:             scores["Alcohol"],
		WaterHEIFAScore:               scores["Water"],
		SugarHEIFAScore:               scores["Sugar"],
		SaturatedFatHEIFAScore:        scores["SaturatedFat"],
		UnsaturatedFatHEIFAScore:      scores["UnsaturatedFat"],
	}
}

// SeedIfEmpty imports the dataset at csvPath once. If any patient rows exist
// the import is a no-op, which makes startup idempotent. All inserts run in
// one transaction so a failure leaves no half-seeded store behind.
func (s *ImportService) SeedIfEmpty(csvPath string) error {
	var count int64
	if err := s.db.Model(&models.Patient{}).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: count check: %v", ErrImport, err)
	}
	if count > 0 {
		return nil
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}
	defer f.Close()

	rows, err := LoadPatientRows(f)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		log.Printf("import: no usable rows in %s, store left empty", csvPath)
		return nil
	}

	patients := make([]models.Patient, 0, len(rows))
	for _, row := range rows {
		patients = append(patients, PatientFromRow(row))
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&patients).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}

	log.Printf("import: seeded %d patients from %s", len(patients), csvPath)
	return nil
}
