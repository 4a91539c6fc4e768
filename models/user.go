package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID        string `gorm:"uniqueIndex"`
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FirstName     string
	LastName      string
	Sex           string // "male" | "female"
	Birthday      time.Time
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string // sedentary | light | moderate | active | very_active
	FitnessGoals  string
	ProgressPhoto string // public URL of the latest uploaded photo
	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
	Onboarded     bool
	Disabled      bool
}
