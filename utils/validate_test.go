package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMaleInput() MeasurementInput {
	return MeasurementInput{
		AgeYears: 30,
		Sex:      SexMale,
		HeightCm: 180,
		WeightKg: 80,
		WaistCm:  85,
		NeckCm:   38,
	}
}

func validFemaleInput() MeasurementInput {
	return MeasurementInput{
		AgeYears: 28,
		Sex:      SexFemale,
		HeightCm: 165,
		WeightKg: 60,
		WaistCm:  75,
		NeckCm:   33,
		HipCm:    95,
	}
}

func TestValidateMeasurements_ValidInputs(t *testing.T) {
	assert.Empty(t, ValidateMeasurements(validMaleInput()))
	assert.Empty(t, ValidateMeasurements(validFemaleInput()))
}

func TestValidateMeasurements_AgeOutOfRange(t *testing.T) {
	in := MeasurementInput{
		AgeYears: 5,
		Sex:      SexMale,
		HeightCm: 170,
		WeightKg: 70,
		WaistCm:  80,
		NeckCm:   35,
	}

	violations := ValidateMeasurements(in)
	require.Len(t, violations, 1)
	assert.Equal(t, "age must be between 13 and 100 years", violations[0])
}

func TestValidateMeasurements_HipRequiredForFemales(t *testing.T) {
	in := validFemaleInput()
	in.HipCm = 0 // not provided

	violations := ValidateMeasurements(in)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "required for females")
}

func TestValidateMeasurements_WaistMustExceedNeck(t *testing.T) {
	t.Run("both in range", func(t *testing.T) {
		in := validMaleInput()
		in.WaistCm = 55
		in.NeckCm = 58

		violations := ValidateMeasurements(in)
		require.Len(t, violations, 1)
		assert.Equal(t, "waist measurement must be greater than neck measurement", violations[0])
	})

	t.Run("runs even when range checks already failed", func(t *testing.T) {
		in := validMaleInput()
		in.WaistCm = 35 // below range
		in.NeckCm = 40

		violations := ValidateMeasurements(in)
		assert.Contains(t, violations, "waist measurement must be between 50 and 200 cm")
		assert.Contains(t, violations, "waist measurement must be greater than neck measurement")
	})
}

// Absent fields arrive as zeros and report the same message class as
// present-but-invalid ones, in fixed field order.
func TestValidateMeasurements_EmptyInputMessageOrder(t *testing.T) {
	violations := ValidateMeasurements(MeasurementInput{Sex: SexFemale})

	assert.Equal(t, []string{
		"age must be between 13 and 100 years",
		"height must be between 100 and 250 cm",
		"weight must be between 30 and 300 kg",
		"waist measurement must be between 50 and 200 cm",
		"neck measurement must be between 20 and 60 cm",
		"hip measurement is required for females and must be between 60 and 200 cm",
	}, violations)
}

func TestValidateMeasurements_NoShortCircuit(t *testing.T) {
	in := MeasurementInput{
		AgeYears: 200,
		Sex:      SexMale,
		HeightCm: 90,
		WeightKg: 20,
		WaistCm:  30,
		NeckCm:   70,
	}

	violations := ValidateMeasurements(in)
	// five range failures plus the cross-field rule
	assert.Len(t, violations, 6)
}

func TestValidateMeasurements_InclusiveBounds(t *testing.T) {
	in := MeasurementInput{
		AgeYears: 13,
		Sex:      SexMale,
		HeightCm: 250,
		WeightKg: 300,
		WaistCm:  200,
		NeckCm:   20,
	}
	assert.Empty(t, ValidateMeasurements(in))

	in.AgeYears = 100
	in.HeightCm = 100
	in.WeightKg = 30
	in.WaistCm = 50
	in.NeckCm = 20
	assert.Empty(t, ValidateMeasurements(in))
}
