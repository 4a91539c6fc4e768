package models

import "time"

// Alert flags an anomaly on a computed result, e.g. a body-fat value that hit
// the clamp boundary and may indicate a data-entry error.
type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "warning" | "info"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
