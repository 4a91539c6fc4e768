package services

import (
	"context"
	"time"

	"github.com/sivakadari517-cloud/fitxgen-sub000/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ---------- Trend summary ----------

type MetricTrend struct {
	Average float64 `json:"average"`
	First   float64 `json:"first"`
	Latest  float64 `json:"latest"`
	Change  float64 `json:"change"`
	Trend   string  `json:"trend"` // "down" | "stable" | "up" | "no_data"
}

type TrendSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Samples int         `json:"samples"`
	BodyFat MetricTrend `json:"body_fat"`
	BMI     MetricTrend `json:"bmi"`
	Weight  MetricTrend `json:"weight"`
	TDEE    MetricTrend `json:"tdee"`
}

// Summary aggregates the user's composition history over [from, to]: average,
// first/latest values, and a direction per metric.
func (s *AnalyticsService) Summary(ctx context.Context, userID uint, from, to time.Time) (*TrendSummary, error) {
	var records []models.CompositionRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	var measurements []models.Measurement
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND taken_at BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("taken_at ASC").
		Find(&measurements).Error; err != nil {
		return nil, err
	}

	out := &TrendSummary{Samples: len(records)}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")

	var bodyFat, bmi, tdee, weight []float64
	for _, r := range records {
		bodyFat = append(bodyFat, r.BodyFatPercent)
		bmi = append(bmi, r.BMI)
		tdee = append(tdee, r.TDEE)
	}
	for _, m := range measurements {
		weight = append(weight, m.WeightKg)
	}

	out.BodyFat = metricTrend(bodyFat, 0.5)
	out.BMI = metricTrend(bmi, 0.3)
	out.Weight = metricTrend(weight, 0.5)
	out.TDEE = metricTrend(tdee, 50)

	return out, nil
}

// metricTrend summarizes one series. Changes smaller than threshold count as
// stable so normal day-to-day noise doesn't read as a trend.
func metricTrend(series []float64, threshold float64) MetricTrend {
	if len(series) == 0 {
		return MetricTrend{Trend: "no_data"}
	}

	first := series[0]
	latest := series[len(series)-1]
	change := latest - first

	trend := "stable"
	if change > threshold {
		trend = "up"
	} else if change < -threshold {
		trend = "down"
	}

	return MetricTrend{
		Average: mean(series),
		First:   first,
		Latest:  latest,
		Change:  change,
		Trend:   trend,
	}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
