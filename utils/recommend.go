package utils

// A recommendation rule appends its messages when the predicate holds. Rules
// are independent — extreme inputs can trigger several groups at once — so
// this stays an ordered list, not a dispatch on category.
type recommendationRule struct {
	applies  func(bodyFat, bmi float64, sex Sex, age int) bool
	messages []string
}

var recommendationRules = []recommendationRule{
	{
		applies: func(_, bmi float64, _ Sex, _ int) bool { return bmi < 18.5 },
		messages: []string{
			"Your BMI is below the healthy range. Consider increasing your caloric intake with nutrient-dense foods.",
			"Add strength training to build lean muscle mass.",
		},
	},
	{
		applies: func(_, bmi float64, _ Sex, _ int) bool { return bmi > 25 },
		messages: []string{
			"Aim for a moderate caloric deficit of 300-500 calories per day.",
			"Combine cardio with strength training for effective fat loss.",
		},
	},
	{
		applies: func(bodyFat, _ float64, sex Sex, _ int) bool {
			return (sex == SexMale && bodyFat < 10) || (sex == SexFemale && bodyFat < 16)
		},
		messages: []string{
			"Your body fat is quite low. Make sure you are getting adequate nutrition.",
			"Monitor your energy levels and health markers regularly.",
		},
	},
	{
		applies: func(bodyFat, _ float64, sex Sex, _ int) bool {
			return (sex == SexMale && bodyFat > 25) || (sex == SexFemale && bodyFat > 32)
		},
		messages: []string{
			"Consider a structured fat-loss program with professional guidance.",
			"Increase your daily activity level gradually.",
			"Consult a healthcare provider before starting an intensive program.",
		},
	},
	{
		applies: func(_, _ float64, _ Sex, age int) bool { return age > 40 },
		messages: []string{
			"Prioritize resistance training to preserve muscle mass.",
			"Include flexibility and mobility work in your routine.",
		},
	},
}

// generalRecommendations close every list regardless of the numbers.
var generalRecommendations = []string{
	"Stay hydrated and aim for 7-9 hours of sleep per night.",
	"Eat a balanced diet with adequate protein, whole grains, and vegetables.",
	"Get at least 150 minutes of moderate exercise per week.",
}

// GenerateRecommendations evaluates the rule list in order and returns every
// message whose rule fired, followed by the general wellness messages. No
// deduplication is performed.
func GenerateRecommendations(bodyFatPercent, bmi float64, sex Sex, age int) []string {
	recs := []string{}
	for _, rule := range recommendationRules {
		if rule.applies(bodyFatPercent, bmi, sex, age) {
			recs = append(recs, rule.messages...)
		}
	}
	return append(recs, generalRecommendations...)
}
