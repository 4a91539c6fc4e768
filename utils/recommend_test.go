package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Healthy numbers: nothing fires except the general wellness messages.
func TestGenerateRecommendations_GeneralOnly(t *testing.T) {
	recs := GenerateRecommendations(15, 22, SexMale, 30)
	assert.Equal(t, generalRecommendations, recs)
}

func TestGenerateRecommendations_AlwaysEndsWithGeneral(t *testing.T) {
	recs := GenerateRecommendations(30, 27, SexMale, 45)
	require.GreaterOrEqual(t, len(recs), 3)
	assert.Equal(t, generalRecommendations, recs[len(recs)-3:])
}

func TestGenerateRecommendations_Underweight(t *testing.T) {
	recs := GenerateRecommendations(15, 17.5, SexMale, 25)
	assert.Contains(t, recs[0], "below the healthy range")
	assert.Len(t, recs, 2+3)
}

func TestGenerateRecommendations_LowBodyFatThresholds(t *testing.T) {
	// male threshold is <10, female <16
	maleLow := GenerateRecommendations(9.9, 22, SexMale, 25)
	assert.Contains(t, maleLow[0], "quite low")

	femaleAtMaleLevel := GenerateRecommendations(12, 22, SexFemale, 25)
	assert.Contains(t, femaleAtMaleLevel[0], "quite low")

	femaleOK := GenerateRecommendations(16, 22, SexFemale, 25)
	assert.Equal(t, generalRecommendations, femaleOK)
}

func TestGenerateRecommendations_HighBodyFatThresholds(t *testing.T) {
	// male threshold is >25, female >32
	maleHigh := GenerateRecommendations(25.1, 22, SexMale, 25)
	assert.Contains(t, maleHigh[0], "structured fat-loss")

	femaleAtMaleLevel := GenerateRecommendations(26, 22, SexFemale, 25)
	assert.Equal(t, generalRecommendations, femaleAtMaleLevel)

	femaleHigh := GenerateRecommendations(32.1, 22, SexFemale, 25)
	assert.Contains(t, femaleHigh[0], "structured fat-loss")
}

func TestGenerateRecommendations_AgeRule(t *testing.T) {
	at40 := GenerateRecommendations(15, 22, SexMale, 40)
	assert.Equal(t, generalRecommendations, at40) // rule needs age > 40

	over40 := GenerateRecommendations(15, 22, SexMale, 41)
	assert.Contains(t, over40[0], "resistance training")
	assert.Len(t, over40, 2+3)
}

// Independent rules stack in evaluation order for extreme inputs.
func TestGenerateRecommendations_RulesStack(t *testing.T) {
	// BMI > 25, male body fat > 25, age > 40
	recs := GenerateRecommendations(30, 31, SexMale, 50)
	require.Len(t, recs, 2+3+2+3)

	assert.Contains(t, recs[0], "caloric deficit")
	assert.Contains(t, recs[2], "structured fat-loss")
	assert.Contains(t, recs[5], "resistance training")
	assert.Equal(t, generalRecommendations, recs[7:])
}
