package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/VictoriaKoe/NutriTrack/models"
)

// FoodCategories lists the twelve HEIFA sub-categories, spelled the way the
// dataset spells its column names ({Category}HEIFAscore{Gender}).
var FoodCategories = []string{
	"Discretionary",
	"Vegetables",
	"Fruit",
	"Grainsandcereals",
	"Wholegrains",
	"Meatandalternatives",
	"Sodium",
	"Alcohol",
	"Water",
	"Sugar",
	"SaturatedFat",
	"UnsaturatedFat",
}

// FoodCategoryScore holds one user's total HEIFA score and the per-category
// sub-scores that could be resolved from their row. Categories whose column
// is absent or non-numeric are left out of the map rather than zero-filled.
type FoodCategoryScore struct {
	Total      float64
	ByCategory map[string]float64
}

// ErrInvalidGender is returned for any sex value that does not normalize to
// Male or Female. Such rows cannot be scored because the score columns are
// gender-suffixed.
var ErrInvalidGender = errors.New("gender must be 'Male' or 'Female'")

// NormalizeGender maps the raw Sex column value onto the two canonical
// gender strings.
func NormalizeGender(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m":
		return models.GenderMale, nil
	case "female", "f":
		return models.GenderFemale, nil
	default:
		return "", ErrInvalidGender
	}
}

// AggregateScores resolves a user's HEIFA scores from one CSV record. The
// header map carries column name -> index. Category columns that are missing
// or unparseable are omitted from the result; the total-score column is
// required and its absence fails the whole row, because dashboards and the
// clinician averages depend on it.
func AggregateScores(header map[string]int, record []string, gender string) (FoodCategoryScore, error) {
	gender, err := NormalizeGender(gender)
	if err != nil {
		return FoodCategoryScore{}, err
	}

	byCategory := make(map[string]float64, len(FoodCategories))
	for _, category := range FoodCategories {
		idx, ok := header[category+"HEIFAscore"+gender]
		if !ok || idx >= len(record) {
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
		if err != nil {
			continue
		}
		byCategory[category] = score
	}

	totalColumn := "HEIFAtotalscore" + gender
	idx, ok := header[totalColumn]
	if !ok || idx >= len(record) {
		return FoodCategoryScore{}, fmt.Errorf("column %s not found", totalColumn)
	}
	total, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	if err != nil {
		return FoodCategoryScore{}, fmt.Errorf("column %s is not numeric: %w", totalColumn, err)
	}

	return FoodCategoryScore{Total: total, ByCategory: byCategory}, nil
}
