package utils

import (
	"errors"
	"math"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// MeasurementInput is one set of raw anthropometric readings. A zero HipCm
// means the hip was not measured; it is only meaningful for females.
type MeasurementInput struct {
	AgeYears int     `json:"age"`
	Sex      Sex     `json:"sex"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	WaistCm  float64 `json:"waist_cm"`
	NeckCm   float64 `json:"neck_cm"`
	HipCm    float64 `json:"hip_cm,omitempty"`
}

// BodyComposition is the full computed result for one measurement set.
type BodyComposition struct {
	BodyFatPercent  float64      `json:"body_fat_percent"`
	BMI             float64      `json:"bmi"`
	Category        Category     `json:"category"`
	HealthStatus    HealthStatus `json:"health_status"`
	Recommendations []string     `json:"recommendations"`
}

// ErrMissingMeasurement signals a contract violation: the caller computed a
// female record without a hip circumference. Validated input never hits this.
var ErrMissingMeasurement = errors.New("missing measurement: hip circumference is required for females")

const (
	bodyFatFloor   = 3.0
	bodyFatCeiling = 50.0
)

// ComputeBodyComposition runs the full pipeline over an already-validated
// input: BMI, Navy-method body fat, classification, and rule-based
// recommendations.
//
// Body fat outside [3, 50] is silently clamped to the boundary — a policy
// inherited from the product, not an error path. Callers that care about
// anomalous inputs must inspect the result themselves.
func ComputeBodyComposition(in MeasurementInput) (BodyComposition, error) {
	if in.Sex == SexFemale && in.HipCm <= 0 {
		return BodyComposition{}, ErrMissingMeasurement
	}

	heightM := in.HeightCm / 100.0
	bmi := in.WeightKg / (heightM * heightM)

	var bodyFat float64
	if in.Sex == SexFemale {
		bodyFat = 495.0/(1.29579-0.35004*math.Log10(in.WaistCm+in.HipCm-in.NeckCm)+0.22100*math.Log10(in.HeightCm)) - 450.0
	} else {
		bodyFat = 495.0/(1.0324-0.19077*math.Log10(in.WaistCm-in.NeckCm)+0.15456*math.Log10(in.HeightCm)) - 450.0
	}
	bodyFat = clamp(bodyFat, bodyFatFloor, bodyFatCeiling)

	bodyFat = round1(bodyFat)
	bmi = round1(bmi)

	category, status := ClassifyBodyFat(bodyFat, in.Sex, in.AgeYears)

	return BodyComposition{
		BodyFatPercent:  bodyFat,
		BMI:             bmi,
		Category:        category,
		HealthStatus:    status,
		Recommendations: GenerateRecommendations(bodyFat, bmi, in.Sex, in.AgeYears),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
