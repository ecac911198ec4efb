package models

// Persona archetypes collected by the questionnaire. These six values are
// fixed; the questionnaire rejects anything else.
const (
	PersonaHealthDevotee        = "Health Devotee"
	PersonaMindfulEater         = "Mindful Eater"
	PersonaWellnessStriver      = "Wellness Striver"
	PersonaBalanceSeeker        = "Balance Seeker"
	PersonaHealthProcrastinator = "Health Procrastinator"
	PersonaFoodCarefree         = "Food Carefree"
)

// Personas lists the valid persona values in display order.
var Personas = []string{
	PersonaHealthDevotee,
	PersonaMindfulEater,
	PersonaWellnessStriver,
	PersonaBalanceSeeker,
	PersonaHealthProcrastinator,
	PersonaFoodCarefree,
}

// FoodIntake stores one user's questionnaire response. The app keeps at most
// one current row per user; resubmissions update in place.
//
// Time fields are free-form HH:MM strings and are stored exactly as
// submitted (no zero-padding normalization).
type FoodIntake struct {
	FoodIntakeID int `gorm:"primaryKey" json:"food_intake_id"`

	Fruits     bool `json:"fruits"`
	Vegetables bool `json:"vegetables"`
	Grains     bool `json:"grains"`
	RedMeat    bool `json:"red_meat"`
	Seafood    bool `json:"seafood"`
	Poultry    bool `json:"poultry"`
	Fish       bool `json:"fish"`
	Eggs       bool `json:"eggs"`
	NutsSeeds  bool `json:"nuts_seeds"`

	Persona string `gorm:"not null" json:"persona"`

	MealTime   string `json:"meal_time"`
	SleepTime  string `json:"sleep_time"`
	WakeUpTime string `json:"wake_up_time"`

	UserID  int     `gorm:"not null;index" json:"user_id"`
	Patient Patient `gorm:"belongsTo;foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
