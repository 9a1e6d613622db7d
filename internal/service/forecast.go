package service

import (
	"math"
	"time"

	"github.com/leadpulse/leadpulse/internal/domain"
)

// Confidence band multipliers around the projected daily mean
const (
	forecastLowerFactor = 0.7
	forecastUpperFactor = 1.3
)

// BuildForecast projects lead volume for the next days from the observed
// daily history. The projection is a flat daily mean with a fixed
// confidence band, so identical history always yields identical output.
// The mean is taken over days with activity, not the full window.
func BuildForecast(history []domain.DailyCount, from time.Time, days int) *domain.Forecast {
	var total int
	for _, day := range history {
		total += day.Leads
	}

	mean := 0.0
	if len(history) > 0 {
		mean = float64(total) / float64(len(history))
	}

	predicted := int(math.Round(mean))
	lower := int(math.Round(float64(predicted) * forecastLowerFactor))
	upper := int(math.Round(float64(predicted) * forecastUpperFactor))
	if lower < 0 {
		lower = 0
	}

	points := make([]domain.ForecastPoint, 0, days)
	for i := 1; i <= days; i++ {
		date := from.AddDate(0, 0, i)
		points = append(points, domain.ForecastPoint{
			Date:      date.Format("2006-01-02"),
			Predicted: predicted,
			Lower:     lower,
			Upper:     upper,
		})
	}

	return &domain.Forecast{
		AvgDailyLeads: predicted,
		Forecast:      points,
	}
}
