package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/sivakadari517-cloud/fitxgen-sub000/models"
	"github.com/sivakadari517-cloud/fitxgen-sub000/utils"

	"gorm.io/gorm"
)

type CompositionService struct {
	db *gorm.DB
	rt *RealtimeHub
}

func NewCompositionService(db *gorm.DB, rt *RealtimeHub) *CompositionService {
	return &CompositionService{db: db, rt: rt}
}

// CompositionOutcome bundles everything computed for one measurement.
type CompositionOutcome struct {
	Measurement models.Measurement    `json:"measurement"`
	Result      utils.BodyComposition `json:"result"`
	BMR         float64               `json:"bmr"`
	TDEE        float64               `json:"tdee"`
}

// RecordMeasurement runs the calculation pipeline over a validated input,
// persists the raw measurement and its computed record, and pushes the fresh
// result to the user's connected clients. Callers must run
// utils.ValidateMeasurements first; an unvalidated female record without a
// hip measurement surfaces here as utils.ErrMissingMeasurement.
func (s *CompositionService) RecordMeasurement(userID uint, in utils.MeasurementInput, level utils.ActivityLevel) (*CompositionOutcome, error) {
	result, err := utils.ComputeBodyComposition(in)
	if err != nil {
		return nil, err
	}

	bmr := utils.CalculateBMR(in.WeightKg, in.HeightCm, in.AgeYears, in.Sex)
	tdee := utils.CalculateTDEE(bmr, level)

	m := models.Measurement{
		UserID:   userID,
		AgeYears: in.AgeYears,
		Sex:      string(in.Sex),
		HeightCm: in.HeightCm,
		WeightKg: in.WeightKg,
		WaistCm:  in.WaistCm,
		NeckCm:   in.NeckCm,
		HipCm:    in.HipCm,
		TakenAt:  time.Now(),
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, err
	}

	rec := models.CompositionRecord{
		UserID:          userID,
		MeasurementID:   m.ID,
		BodyFatPercent:  result.BodyFatPercent,
		BMI:             result.BMI,
		Category:        string(result.Category),
		HealthStatus:    string(result.HealthStatus),
		BMR:             bmr,
		TDEE:            tdee,
		Recommendations: strings.Join(result.Recommendations, "\n"),
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, err
	}

	// The engine clamps silently; a result sitting on a clamp boundary is
	// usually a data-entry error, so flag it at the application layer.
	if result.BodyFatPercent <= 3.0 || result.BodyFatPercent >= 50.0 {
		EmitAlert(userID, "warning", fmt.Sprintf(
			"Computed body fat hit the %.1f%% boundary — please double-check your measurements.",
			result.BodyFatPercent))
	}

	if s.rt != nil {
		s.rt.BroadcastEvent(userID, "composition.recorded", map[string]any{
			"record": rec,
			"result": result,
		})
	}

	return &CompositionOutcome{Measurement: m, Result: result, BMR: bmr, TDEE: tdee}, nil
}

// History returns the user's computed records, newest first.
func (s *CompositionService) History(userID uint, limit int) ([]models.CompositionRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var records []models.CompositionRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&records).Error
	return records, err
}
