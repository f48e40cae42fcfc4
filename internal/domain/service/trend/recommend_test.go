package trend_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"sockpredict/internal/domain"
	"sockpredict/internal/domain/entity"
	"sockpredict/internal/domain/service/pricing"
	"sockpredict/internal/domain/service/trend"
	"sockpredict/pkg/errcodes"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func point(day, hour int, price string) entity.PricePoint {
	return entity.PricePoint{
		Time:  entity.TimePoint{Hour: hour, DayOfWeek: day, Month: 1},
		Price: d(price),
	}
}

func TestFindBestWindow(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name           string
		series         entity.Series
		bestDay        int
		bestHour       int
		savings        string
		savingsPercent string
	}{
		{
			name:           "Single point",
			series:         entity.Series{point(0, 9, "4.50")},
			bestDay:        0,
			bestHour:       9,
			savings:        "1.50",
			savingsPercent: "25.00",
		},
		{
			name: "Minimum in the middle",
			series: entity.Series{
				point(0, 9, "6.50"),
				point(0, 10, "3.75"),
				point(0, 11, "5.00"),
			},
			bestDay:        0,
			bestHour:       10,
			savings:        "2.25",
			savingsPercent: "37.50",
		},
		{
			name: "Tie breaks to the earliest point",
			series: entity.Series{
				point(2, 9, "5.00"),
				point(2, 10, "4.00"),
				point(2, 11, "4.00"),
				point(2, 12, "4.00"),
			},
			bestDay:  2,
			bestHour: 10,
			savings:  "2.00", savingsPercent: "33.33",
		},
		{
			name: "Flat series returns the first point",
			series: entity.Series{
				point(0, 0, "4.50"),
				point(0, 1, "4.50"),
				point(0, 2, "4.50"),
			},
			bestDay:  0,
			bestHour: 0,
			savings:  "1.50", savingsPercent: "25.00",
		},
		{
			name: "All points above base clamp savings at zero",
			series: entity.Series{
				point(0, 9, "7.50"),
				point(0, 10, "8.25"),
			},
			bestDay:  0,
			bestHour: 9,
			savings:  "0.00", savingsPercent: "0.00",
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			rec, err := trend.FindBestWindow(tc.series, d("6.00"))
			rq.NoError(err)

			rq.Equal(tc.bestDay, rec.Best.Time.DayOfWeek)
			rq.Equal(tc.bestHour, rec.Best.Time.Hour)
			rq.Equal(tc.savings, rec.Savings.StringFixed(2))
			rq.Equal(tc.savingsPercent, rec.SavingsPercent.StringFixed(2))
		})
	}
}

func TestFindBestWindowEmptySeries(t *testing.T) {
	rq := require.New(t)

	_, err := trend.FindBestWindow(nil, d("6.00"))
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.EmptySeries, code)
}

func TestFindBestWindowOverFullMonth(t *testing.T) {
	rq := require.New(t)

	engine, err := pricing.NewEngine(pricing.DefaultConfig())
	rq.NoError(err)

	series, err := trend.NewSampler(engine).SampleHeatmap(7, entity.EventNone)
	rq.NoError(err)

	rec, err := trend.FindBestWindow(series, engine.BasePrice())
	rq.NoError(err)

	// July's cheapest slot is the start of the Tuesday afternoon lull.
	rq.Equal(1, rec.Best.Time.DayOfWeek)
	rq.Equal(13, rec.Best.Time.Hour)
	rq.Equal("3.75", rec.Best.Price.StringFixed(2))
	rq.Equal("2.25", rec.Savings.StringFixed(2))
	rq.Equal("37.50", rec.SavingsPercent.StringFixed(2))
}

func TestExtremes(t *testing.T) {
	rq := require.New(t)

	series := entity.Series{
		point(0, 9, "5.00"),
		point(0, 10, "3.25"),
		point(0, 11, "8.00"),
		point(0, 12, "3.25"),
		point(0, 13, "8.00"),
	}

	cheapest, priciest, err := trend.Extremes(series)
	rq.NoError(err)

	rq.Equal(10, cheapest.Time.Hour)
	rq.Equal("3.25", cheapest.Price.StringFixed(2))

	rq.Equal(11, priciest.Time.Hour)
	rq.Equal("8.00", priciest.Price.StringFixed(2))
}

func TestExtremesEmptySeries(t *testing.T) {
	rq := require.New(t)

	_, _, err := trend.Extremes(entity.Series{})
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.EmptySeries, code)
}
