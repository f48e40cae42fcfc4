package server

import (
	"github.com/samber/lo"

	"sockpredict/internal/domain/entity"
	"sockpredict/pkg/rest"
)

func newRESTQuote(quote entity.Quote) rest.Quote {
	return rest.Quote{
		Time: rest.TimePoint{
			DayOfWeek: quote.Time.DayOfWeek,
			Hour:      quote.Time.Hour,
			Month:     quote.Time.Month,
		},
		Event:          quote.Event.String(),
		Price:          quote.Price.StringFixed(2),
		BasePrice:      quote.BasePrice.StringFixed(2),
		Savings:        quote.Savings.StringFixed(2),
		SavingsPercent: quote.SavingsPercent.StringFixed(2),
		Factors: lo.Map(quote.Factors, func(factor entity.Factor, _ int) rest.Factor {
			return rest.Factor{
				Name:  factor.Name,
				Delta: factor.Delta.StringFixed(2),
			}
		}),
	}
}

func newRESTPricePoint(point entity.PricePoint) rest.PricePoint {
	return rest.PricePoint{
		DayOfWeek: point.Time.DayOfWeek,
		Day:       point.Time.DayName(),
		Hour:      point.Time.Hour,
		Price:     point.Price.StringFixed(2),
	}
}

func newRESTSeries(series entity.Series) []rest.PricePoint {
	return lo.Map(series, func(point entity.PricePoint, _ int) rest.PricePoint {
		return newRESTPricePoint(point)
	})
}

func newRESTRecommendation(rec entity.Recommendation) rest.Recommendation {
	return rest.Recommendation{
		DayOfWeek:      rec.Best.Time.DayOfWeek,
		Day:            rec.Best.Time.DayName(),
		Hour:           rec.Best.Time.Hour,
		Price:          rec.Best.Price.StringFixed(2),
		Savings:        rec.Savings.StringFixed(2),
		SavingsPercent: rec.SavingsPercent.StringFixed(2),
	}
}

// newRESTHeatmap regroups a 168-point (day, hour) series into 7 rows of 24
// prices plus the grid extremes for color scaling.
func newRESTHeatmap(series entity.Series) rest.Heatmap {
	rows := make([]rest.HeatmapRow, 7)
	for day := 0; day < 7; day++ {
		rows[day] = rest.HeatmapRow{
			DayOfWeek: day,
			Day:       entity.TimePoint{DayOfWeek: day, Month: 1}.DayName(),
			Prices:    make([]string, 0, 24),
		}
	}

	minPoint, maxPoint := series[0], series[0]
	for _, point := range series {
		rows[point.Time.DayOfWeek].Prices = append(rows[point.Time.DayOfWeek].Prices, point.Price.StringFixed(2))
		if point.Price.LessThan(minPoint.Price) {
			minPoint = point
		}
		if point.Price.GreaterThan(maxPoint.Price) {
			maxPoint = point
		}
	}

	return rest.Heatmap{
		Rows:     rows,
		MinPrice: minPoint.Price.StringFixed(2),
		MaxPrice: maxPoint.Price.StringFixed(2),
	}
}
