package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMR(t *testing.T) {
	// Mifflin-St Jeor: 10·80 + 6.25·180 − 5·30 + 5
	assert.Equal(t, 1780.0, CalculateBMR(80, 180, 30, SexMale))
	// 10·65 + 6.25·165 − 5·28 − 161
	assert.Equal(t, 1380.25, CalculateBMR(65, 165, 28, SexFemale))
}

func TestCalculateTDEE_Factors(t *testing.T) {
	cases := []struct {
		level ActivityLevel
		want  float64
	}{
		{ActivitySedentary, 1800},   // 1500 × 1.2
		{ActivityLight, 2062.5},     // 1500 × 1.375
		{ActivityModerate, 2325},    // 1500 × 1.55
		{ActivityActive, 2587.5},    // 1500 × 1.725
		{ActivityVeryActive, 2850},  // 1500 × 1.9
	}

	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateTDEE(1500, tc.level))
		})
	}
}

func TestCalculateTDEE_UnknownLevelDefaultsToModerate(t *testing.T) {
	assert.Equal(t, 2325.0, CalculateTDEE(1500, ActivityLevel("crossfit")))
	assert.Equal(t, 2325.0, CalculateTDEE(1500, ""))
}
