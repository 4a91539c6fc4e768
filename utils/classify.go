package utils

// Category is a body-fat-percentage classification bucket.
type Category string

const (
	CategoryEssentialFat Category = "Essential Fat"
	CategoryAthletic     Category = "Athletic"
	CategoryFitness      Category = "Fitness"
	CategoryAverage      Category = "Average"
	CategoryObese        Category = "Obese"
)

// HealthStatus grades how far a body-fat reading sits from the optimal range.
type HealthStatus string

const (
	StatusExcellent HealthStatus = "Excellent"
	StatusGood      HealthStatus = "Good"
	StatusFair      HealthStatus = "Fair"
	StatusPoor      HealthStatus = "Poor"
	StatusVeryPoor  HealthStatus = "Very Poor"
)

// Thresholds split at age 30 for both sexes.
type sexAgeBracket struct {
	sex    Sex
	over30 bool
}

type categoryBound struct {
	upper float64 // value strictly below upper falls in this bucket
	label Category
}

// Ascending bound tables; a value past every bound is Obese.
var categoryTables = map[sexAgeBracket][]categoryBound{
	{SexMale, false}: {
		{8, CategoryEssentialFat},
		{14, CategoryAthletic},
		{21, CategoryFitness},
		{25, CategoryAverage},
	},
	{SexMale, true}: {
		{8, CategoryEssentialFat},
		{17, CategoryAthletic},
		{24, CategoryFitness},
		{28, CategoryAverage},
	},
	{SexFemale, false}: {
		{10, CategoryEssentialFat},
		{16, CategoryAthletic},
		{24, CategoryFitness},
		{31, CategoryAverage},
	},
	{SexFemale, true}: {
		{10, CategoryEssentialFat},
		{20, CategoryAthletic},
		{27, CategoryFitness},
		{34, CategoryAverage},
	},
}

type optimalRange struct {
	min, max float64
}

var optimalRanges = map[sexAgeBracket]optimalRange{
	{SexMale, false}:   {8, 19},
	{SexMale, true}:    {11, 22},
	{SexFemale, false}: {16, 24},
	{SexFemale, true}:  {20, 27},
}

// ClassifyBodyFat maps a body-fat percentage to a category label and a
// health-status band. Both depend on sex and the age-30 split.
func ClassifyBodyFat(bodyFatPercent float64, sex Sex, age int) (Category, HealthStatus) {
	bracket := sexAgeBracket{sex: sex, over30: age >= 30}
	return categoryFor(bodyFatPercent, bracket), statusFor(bodyFatPercent, bracket)
}

func categoryFor(v float64, bracket sexAgeBracket) Category {
	for _, b := range categoryTables[bracket] {
		if v < b.upper {
			return b.label
		}
	}
	return CategoryObese
}

// statusFor widens the optimal range symmetrically: inside it is Excellent,
// within 3 points Good, within 6 Fair, within 10 Poor, beyond that Very Poor.
// Boundaries are inclusive (exactly min-3 is still Good, and so on).
func statusFor(v float64, bracket sexAgeBracket) HealthStatus {
	r := optimalRanges[bracket]
	switch {
	case v >= r.min && v <= r.max:
		return StatusExcellent
	case v >= r.min-3 && v <= r.max+3:
		return StatusGood
	case v >= r.min-6 && v <= r.max+6:
		return StatusFair
	case v >= r.min-10 && v <= r.max+10:
		return StatusPoor
	default:
		return StatusVeryPoor
	}
}
