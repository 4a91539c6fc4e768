package utils

// ActivityLevel scales basal metabolic rate into daily expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// CalculateBMR returns basal metabolic rate via Mifflin-St Jeor, unrounded.
func CalculateBMR(weightKg, heightCm float64, age int, sex Sex) float64 {
	base := 10.0*weightKg + 6.25*heightCm - 5.0*float64(age)
	if sex == SexFemale {
		return base - 161
	}
	return base + 5
}

// CalculateTDEE scales a BMR by the activity multiplier. Unrecognized levels
// fall back to the moderate factor.
func CalculateTDEE(bmr float64, level ActivityLevel) float64 {
	factor, ok := activityFactors[level]
	if !ok {
		factor = activityFactors[ActivityModerate]
	}
	return bmr * factor
}
