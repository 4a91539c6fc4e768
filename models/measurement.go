package models

import "time"

// Measurement is one set of raw anthropometric readings as the user entered
// them. HipCm is zero when not measured (males).
type Measurement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	AgeYears  int       `json:"age"`
	Sex       string    `gorm:"size:10" json:"sex"`
	HeightCm  float64   `json:"height_cm"`
	WeightKg  float64   `json:"weight_kg"`
	WaistCm   float64   `json:"waist_cm"`
	NeckCm    float64   `json:"neck_cm"`
	HipCm     float64   `json:"hip_cm"`
	TakenAt   time.Time `gorm:"index" json:"taken_at"`
	CreatedAt time.Time `json:"created_at"`
}
