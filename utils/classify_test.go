package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBodyFat_CategoryTables(t *testing.T) {
	cases := []struct {
		name    string
		bodyFat float64
		sex     Sex
		age     int
		want    Category
	}{
		// male, under 30: <8, <14, <21, <25
		{"male u30 essential", 7.9, SexMale, 25, CategoryEssentialFat},
		{"male u30 athletic at lower bound", 8.0, SexMale, 25, CategoryAthletic},
		{"male u30 fitness", 14.0, SexMale, 25, CategoryFitness},
		{"male u30 average", 21.0, SexMale, 25, CategoryAverage},
		{"male u30 obese", 25.0, SexMale, 25, CategoryObese},

		// male, 30 and over: <8, <17, <24, <28
		{"male o30 athletic", 16.9, SexMale, 30, CategoryAthletic},
		{"male o30 fitness", 17.0, SexMale, 45, CategoryFitness},
		{"male o30 average", 24.0, SexMale, 45, CategoryAverage},
		{"male o30 obese", 28.0, SexMale, 45, CategoryObese},

		// female, under 30: <10, <16, <24, <31
		{"female u30 essential", 9.9, SexFemale, 22, CategoryEssentialFat},
		{"female u30 athletic", 10.0, SexFemale, 22, CategoryAthletic},
		{"female u30 fitness", 16.0, SexFemale, 22, CategoryFitness},
		{"female u30 average", 24.0, SexFemale, 22, CategoryAverage},
		{"female u30 obese", 31.0, SexFemale, 22, CategoryObese},

		// female, 30 and over: <10, <20, <27, <34
		{"female o30 athletic", 19.9, SexFemale, 30, CategoryAthletic},
		{"female o30 fitness", 20.0, SexFemale, 50, CategoryFitness},
		{"female o30 average", 27.0, SexFemale, 50, CategoryAverage},
		{"female o30 obese", 34.0, SexFemale, 50, CategoryObese},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := ClassifyBodyFat(tc.bodyFat, tc.sex, tc.age)
			assert.Equal(t, tc.want, got)
		})
	}
}

// The age bracket flips at exactly 30.
func TestClassifyBodyFat_AgeBracketSplit(t *testing.T) {
	at29, _ := ClassifyBodyFat(15.0, SexMale, 29)
	at30, _ := ClassifyBodyFat(15.0, SexMale, 30)
	assert.Equal(t, CategoryFitness, at29)  // 15 ≥ 14 in the under-30 table
	assert.Equal(t, CategoryAthletic, at30) // 15 < 17 in the 30+ table
}

// Status bands widen the optimal range by 3, 6, and 10 points with inclusive
// boundaries. Male 30+ optimal range is [11, 22].
func TestClassifyBodyFat_HealthStatusBoundaries(t *testing.T) {
	cases := []struct {
		bodyFat float64
		want    HealthStatus
	}{
		{11.0, StatusExcellent},
		{22.0, StatusExcellent},
		{16.5, StatusExcellent},
		{25.0, StatusGood}, // exactly max+3
		{8.0, StatusGood},  // exactly min-3
		{25.1, StatusFair},
		{28.0, StatusFair}, // exactly max+6
		{5.0, StatusFair},  // exactly min-6
		{28.1, StatusPoor},
		{32.0, StatusPoor}, // exactly max+10
		{3.0, StatusPoor},  // clamp floor is still within min-10
		{32.1, StatusVeryPoor},
		{50.0, StatusVeryPoor},
	}

	for _, tc := range cases {
		_, got := ClassifyBodyFat(tc.bodyFat, SexMale, 40)
		assert.Equalf(t, tc.want, got, "bodyFat=%.1f", tc.bodyFat)
	}
}

func TestClassifyBodyFat_OptimalRangesPerBracket(t *testing.T) {
	cases := []struct {
		name    string
		bodyFat float64
		sex     Sex
		age     int
		want    HealthStatus
	}{
		{"male u30 in [8,19]", 19.0, SexMale, 20, StatusExcellent},
		{"male u30 above", 22.0, SexMale, 20, StatusGood},
		{"female u30 in [16,24]", 16.0, SexFemale, 20, StatusExcellent},
		{"female u30 below", 13.0, SexFemale, 20, StatusGood},
		{"female o30 in [20,27]", 27.0, SexFemale, 60, StatusExcellent},
		{"female o30 far above", 37.1, SexFemale, 60, StatusVeryPoor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, got := ClassifyBodyFat(tc.bodyFat, tc.sex, tc.age)
			assert.Equal(t, tc.want, got)
		})
	}
}
