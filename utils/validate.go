package utils

import "fmt"

// Per-field domain-safe ranges (inclusive). A missing reading arrives as zero
// and fails its range check, so absence and invalidity produce the same
// message class on purpose.
type fieldRange struct {
	min, max float64
}

var (
	ageRange    = fieldRange{13, 100}
	heightRange = fieldRange{100, 250}
	weightRange = fieldRange{30, 300}
	waistRange  = fieldRange{50, 200}
	neckRange   = fieldRange{20, 60}
	hipRange    = fieldRange{60, 200}
)

func (r fieldRange) contains(v float64) bool {
	return v >= r.min && v <= r.max
}

// ValidateMeasurements checks a raw measurement record for completeness,
// range validity, and cross-field consistency. It never fails; violations
// come back as human-readable messages, in field order (age, height, weight,
// waist, neck, hip, waist-vs-neck), so an empty slice means the input is safe
// to compute with. All checks run; nothing short-circuits.
func ValidateMeasurements(in MeasurementInput) []string {
	violations := []string{}

	if !ageRange.contains(float64(in.AgeYears)) {
		violations = append(violations, fmt.Sprintf("age must be between %.0f and %.0f years", ageRange.min, ageRange.max))
	}
	if !heightRange.contains(in.HeightCm) {
		violations = append(violations, fmt.Sprintf("height must be between %.0f and %.0f cm", heightRange.min, heightRange.max))
	}
	if !weightRange.contains(in.WeightKg) {
		violations = append(violations, fmt.Sprintf("weight must be between %.0f and %.0f kg", weightRange.min, weightRange.max))
	}
	if !waistRange.contains(in.WaistCm) {
		violations = append(violations, fmt.Sprintf("waist measurement must be between %.0f and %.0f cm", waistRange.min, waistRange.max))
	}
	if !neckRange.contains(in.NeckCm) {
		violations = append(violations, fmt.Sprintf("neck measurement must be between %.0f and %.0f cm", neckRange.min, neckRange.max))
	}
	if in.Sex == SexFemale && !hipRange.contains(in.HipCm) {
		violations = append(violations, fmt.Sprintf("hip measurement is required for females and must be between %.0f and %.0f cm", hipRange.min, hipRange.max))
	}

	// The Navy formula takes log10(waist-neck); waist <= neck would push the
	// argument to zero or below. Checked whenever both readings are present,
	// even if their individual range checks already failed.
	if in.WaistCm > 0 && in.NeckCm > 0 && in.WaistCm <= in.NeckCm {
		violations = append(violations, "waist measurement must be greater than neck measurement")
	}

	return violations
}
