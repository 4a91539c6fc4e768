package services

import (
	"time"

	"github.com/sivakadari517-cloud/fitxgen-sub000/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists an alert and pushes it to the user's live connections.
// Safe to call anywhere; a no-op before InitAlertDeps.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastEvent(userID, "alert.created", a)
	}
}

// ListAlerts returns the user's alerts, newest first.
func ListAlerts(userID uint) ([]models.Alert, error) {
	if _alert.db == nil {
		return nil, nil
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(100).
		Find(&alerts).Error
	return alerts, err
}
