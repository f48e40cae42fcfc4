// This file mirrors the REST surface and would be types.gen.go if the API
// were generated from an openapi spec.
package rest

// TimePoint is a point on the pricing grid. Days are 0=Monday..6=Sunday.
type TimePoint struct {
	DayOfWeek int `json:"day_of_week"`
	Hour      int `json:"hour"`
	Month     int `json:"month"`
}

// PriceRequest is the body of POST /v1/price. Pointer fields keep zero
// values (hour 0, Monday) distinguishable from omitted ones.
type PriceRequest struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required"`
	Hour      *int   `json:"hour" validate:"required"`
	Month     *int   `json:"month" validate:"required"`
	Event     string `json:"event,omitempty"`
}

// Factor is one applied price adjustment.
type Factor struct {
	Name  string `json:"name"`
	Delta string `json:"delta"`
}

// Quote is a single price evaluation. Money fields are fixed two-decimal
// strings ("6.00").
type Quote struct {
	Time           TimePoint `json:"time"`
	Event          string    `json:"event"`
	Price          string    `json:"price"`
	BasePrice      string    `json:"base_price"`
	Savings        string    `json:"savings"`
	SavingsPercent string    `json:"savings_percent"`
	Factors        []Factor  `json:"factors"`
	AsOf           string    `json:"as_of,omitempty"`
}

type PricePoint struct {
	DayOfWeek int    `json:"day_of_week"`
	Day       string `json:"day"`
	Hour      int    `json:"hour"`
	Price     string `json:"price"`
}

type Recommendation struct {
	DayOfWeek      int    `json:"day_of_week"`
	Day            string `json:"day"`
	Hour           int    `json:"hour"`
	Price          string `json:"price"`
	Savings        string `json:"savings"`
	SavingsPercent string `json:"savings_percent"`
}

type HourlyTrend struct {
	Points   []PricePoint   `json:"points"`
	Best     Recommendation `json:"best"`
	Cheapest PricePoint     `json:"cheapest"`
	Priciest PricePoint     `json:"priciest"`
}

type WeeklyTrend struct {
	Points []PricePoint   `json:"points"`
	Best   Recommendation `json:"best"`
}

type HeatmapRow struct {
	DayOfWeek int      `json:"day_of_week"`
	Day       string   `json:"day"`
	Prices    []string `json:"prices"`
}

type Heatmap struct {
	Rows     []HeatmapRow `json:"rows"`
	MinPrice string       `json:"min_price"`
	MaxPrice string       `json:"max_price"`
}

// Error is the error envelope.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`

	// Message is a human-readable description (for UI display).
	Message string `json:"message"`
}

// ErrorCode is a machine-readable error code.
type ErrorCode string
