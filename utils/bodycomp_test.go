package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBodyComposition_BMI(t *testing.T) {
	got, err := ComputeBodyComposition(validMaleInput()) // 180cm / 80kg
	require.NoError(t, err)
	assert.Equal(t, 24.7, got.BMI) // 80 / 1.8²
}

func TestComputeBodyComposition_NavyFormulaMale(t *testing.T) {
	got, err := ComputeBodyComposition(validMaleInput())
	require.NoError(t, err)
	// 495/(1.0324 − 0.19077·log10(85−38) + 0.15456·log10(180)) − 450
	assert.Equal(t, 16.1, got.BodyFatPercent)
}

func TestComputeBodyComposition_NavyFormulaFemale(t *testing.T) {
	got, err := ComputeBodyComposition(validFemaleInput())
	require.NoError(t, err)
	// 495/(1.29579 − 0.35004·log10(75+95−33) + 0.22100·log10(165)) − 450
	assert.Equal(t, 26.9, got.BodyFatPercent)
}

func TestComputeBodyComposition_MissingHipFails(t *testing.T) {
	in := validFemaleInput()
	in.HipCm = 0

	_, err := ComputeBodyComposition(in)
	require.ErrorIs(t, err, ErrMissingMeasurement)
}

func TestComputeBodyComposition_MaleIgnoresHip(t *testing.T) {
	in := validMaleInput()
	withHip := in
	withHip.HipCm = 100

	a, err := ComputeBodyComposition(in)
	require.NoError(t, err)
	b, err := ComputeBodyComposition(withHip)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeBodyComposition_ClampsToFloor(t *testing.T) {
	in := MeasurementInput{
		AgeYears: 25,
		Sex:      SexMale,
		HeightCm: 250,
		WeightKg: 100,
		WaistCm:  50,
		NeckCm:   49, // waist barely exceeds neck → raw value far below 3
	}

	got, err := ComputeBodyComposition(in)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.BodyFatPercent)
}

func TestComputeBodyComposition_ClampsToCeiling(t *testing.T) {
	in := MeasurementInput{
		AgeYears: 25,
		Sex:      SexMale,
		HeightCm: 100,
		WeightKg: 150,
		WaistCm:  200,
		NeckCm:   20, // raw value far above 50
	}

	got, err := ComputeBodyComposition(in)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.BodyFatPercent)
}

func TestComputeBodyComposition_BoundsHoldAcrossInputs(t *testing.T) {
	for waist := 50.0; waist <= 200; waist += 7.5 {
		for neck := 20.0; neck < waist && neck <= 60; neck += 5 {
			in := MeasurementInput{
				AgeYears: 40,
				Sex:      SexMale,
				HeightCm: 175,
				WeightKg: 75,
				WaistCm:  waist,
				NeckCm:   neck,
			}
			got, err := ComputeBodyComposition(in)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.BodyFatPercent, 3.0)
			assert.LessOrEqual(t, got.BodyFatPercent, 50.0)
		}
	}
}

func TestComputeBodyComposition_SexSensitivity(t *testing.T) {
	male := validMaleInput()
	female := male
	female.Sex = SexFemale
	female.HipCm = 95

	m, err := ComputeBodyComposition(male)
	require.NoError(t, err)
	f, err := ComputeBodyComposition(female)
	require.NoError(t, err)
	assert.NotEqual(t, m.BodyFatPercent, f.BodyFatPercent)
}

func TestComputeBodyComposition_Deterministic(t *testing.T) {
	in := validFemaleInput()
	a, err := ComputeBodyComposition(in)
	require.NoError(t, err)
	b, err := ComputeBodyComposition(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeBodyComposition_RoundedToOneDecimal(t *testing.T) {
	got, err := ComputeBodyComposition(validFemaleInput())
	require.NoError(t, err)
	assert.Equal(t, got.BodyFatPercent, math.Round(got.BodyFatPercent*10)/10)
	assert.Equal(t, got.BMI, math.Round(got.BMI*10)/10)
}

func TestComputeBodyComposition_FillsClassificationAndRecommendations(t *testing.T) {
	got, err := ComputeBodyComposition(validMaleInput())
	require.NoError(t, err)
	assert.Equal(t, CategoryAthletic, got.Category) // 16.1% male, age 30 (≥30 bracket)
	assert.Equal(t, StatusExcellent, got.HealthStatus)
	assert.NotEmpty(t, got.Recommendations)
}
