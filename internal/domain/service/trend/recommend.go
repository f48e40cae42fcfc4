package trend

import (
	"github.com/shopspring/decimal"

	"sockpredict/internal/domain"
	"sockpredict/internal/domain/entity"
	"sockpredict/pkg/errcodes"
)

//nolint:gochecknoglobals
var hundred = decimal.NewFromInt(100)

// FindBestWindow scans a series for its minimum price. Ties break toward
// the earliest point in series order. Savings against the base price are
// clamped at zero.
func FindBestWindow(series entity.Series, basePrice decimal.Decimal) (entity.Recommendation, error) {
	if len(series) == 0 {
		return entity.Recommendation{}, domain.NewError(errcodes.EmptySeries, "series has no points")
	}

	best := series[0]
	for _, point := range series[1:] {
		if point.Price.LessThan(best.Price) {
			best = point
		}
	}

	savings := basePrice.Sub(best.Price)
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	percent := decimal.Zero
	if basePrice.IsPositive() {
		percent = savings.Div(basePrice).Mul(hundred).Round(2)
	}

	return entity.Recommendation{
		Best:           best,
		Savings:        savings,
		SavingsPercent: percent,
	}, nil
}

// Extremes returns the cheapest and the priciest points of a series, each
// tie-breaking toward the earliest point.
func Extremes(series entity.Series) (cheapest, priciest entity.PricePoint, err error) {
	if len(series) == 0 {
		return entity.PricePoint{}, entity.PricePoint{},
			domain.NewError(errcodes.EmptySeries, "series has no points")
	}

	cheapest, priciest = series[0], series[0]
	for _, point := range series[1:] {
		if point.Price.LessThan(cheapest.Price) {
			cheapest = point
		}
		if point.Price.GreaterThan(priciest.Price) {
			priciest = point
		}
	}

	return cheapest, priciest, nil
}
