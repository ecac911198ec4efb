package models

// Gender values as they appear in the HEIFA dataset. The CSV column layout
// depends on these (male and female scores live in separate columns).
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Patient mirrors one row of the seeded HEIFA dataset plus the account
// fields a user fills in when claiming their record. UserID is assigned by
// the source data and never regenerated.
type Patient struct {
	UserID      int    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PhoneNumber string `gorm:"not null" json:"phone_number"`
	Username    string `json:"username"`
	Password    string `json:"-"` // bcrypt hash, empty until registration
	Gender      string `gorm:"not null" json:"gender"`

	IsFirstTimeUser bool `gorm:"default:true" json:"is_first_time_user"`
	IsRegistered    bool `gorm:"default:false" json:"is_registered"`

	// Total is authoritative input data from the dataset; it is stored as
	// supplied and never re-derived from the category scores.
	TotalHEIFAScore float64 `json:"total_heifa_score"`

	DiscretionaryHEIFAScore       float64 `json:"discretionary_heifa_score"`
	VegetableHEIFAScore           float64 `json:"vegetable_heifa_score"`
	FruitHEIFAScore               float64 `json:"fruit_heifa_score"`
	GrainsAndCerealsHEIFAScore    float64 `json:"grains_and_cereals_heifa_score"`
	WholeGrainsHEIFAScore         float64 `json:"whole_grains_heifa_score"`
	MeatAndAlternativesHEIFAScore float64 `json:"meat_and_alternatives_heifa_score"`
	SodiumHEIFAScore              float64 `json:"sodium_heifa_score"`
	AlcoholHEIFAScore             float64 `json:"alcohol_heifa_score"`
	WaterHEIFAScore               float64 `json:"water_heifa_score"`
	SugarHEIFAScore               float64 `json:"sugar_heifa_score"`
	SaturatedFatHEIFAScore        float64 `json:"saturated_fat_heifa_score"`
	UnsaturatedFatHEIFAScore      float64 `json:"unsaturated_fat_heifa_score"`
}
