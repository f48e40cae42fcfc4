package entity

import (
	"github.com/shopspring/decimal"
)

// Factor is one applied adjustment: a rule name and its signed delta.
type Factor struct {
	Name  string
	Delta decimal.Decimal
}

// Quote is the result of a single price evaluation.
type Quote struct {
	Time           TimePoint
	Event          EventTag
	Price          decimal.Decimal
	BasePrice      decimal.Decimal
	Savings        decimal.Decimal // base - price, never negative
	SavingsPercent decimal.Decimal
	Factors        []Factor
}

// PricePoint is a (time, price) sample.
type PricePoint struct {
	Time  TimePoint
	Price decimal.Decimal
}

// Series is an ordered sequence of samples along one axis (hours of a day,
// days of a week, or the day×hour grid).
type Series []PricePoint

// Recommendation is the cheapest point of a series and the saving against
// the base price.
type Recommendation struct {
	Best           PricePoint
	Savings        decimal.Decimal
	SavingsPercent decimal.Decimal
}
