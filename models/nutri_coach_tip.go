package models

// NutriCoachTip is an append-only log of generated coaching tips the user
// chose to keep. Rows are never updated; duplicates are possible if the user
// saves the same tip twice.
type NutriCoachTip struct {
	TipID             int    `gorm:"primaryKey" json:"tip_id"`
	GeneratedResponse string `gorm:"not null" json:"generated_response"`

	UserID  int     `gorm:"not null;index" json:"user_id"`
	Patient Patient `gorm:"belongsTo;foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
