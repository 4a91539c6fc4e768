package models

import "time"

// CompositionRecord is the computed outcome for one measurement: body fat,
// BMI, classification, energy expenditure, and the rule-based guidance that
// was generated at the time. Recommendations are stored newline-joined.
type CompositionRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index" json:"user_id"`
	MeasurementID   uint      `gorm:"index" json:"measurement_id"`
	BodyFatPercent  float64   `json:"body_fat_percent"`
	BMI             float64   `json:"bmi"`
	Category        string    `gorm:"size:20" json:"category"`
	HealthStatus    string    `gorm:"size:20" json:"health_status"`
	BMR             float64   `json:"bmr"`
	TDEE            float64   `json:"tdee"`
	Recommendations string    `gorm:"type:text" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}
