package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sockpredict/internal/domain"
	"sockpredict/internal/domain/entity"
	"sockpredict/pkg/errcodes"
)

//nolint:gochecknoglobals
var hundred = decimal.NewFromInt(100)

// Config is the immutable pricing configuration. Engines with different
// configs may coexist (A/B price tables).
type Config struct {
	BasePrice  decimal.Decimal
	FloorPrice decimal.Decimal
	Rules      RuleTable
}

// DefaultConfig returns the shipped table with a $6.00 base and a $0.00
// floor.
func DefaultConfig() Config {
	return Config{
		BasePrice:  d("6.00"),
		FloorPrice: d("0.00"),
		Rules:      DefaultRules(),
	}
}

// Engine evaluates the rule table. It holds no mutable state; Quote is a
// pure function of its inputs and may be called concurrently.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) (*Engine, error) {
	if !cfg.BasePrice.IsPositive() {
		return nil, domain.NewError(errcodes.InvalidBasePrice,
			fmt.Sprintf("base price %s must be positive", cfg.BasePrice))
	}
	if cfg.FloorPrice.IsNegative() {
		return nil, domain.NewError(errcodes.InvalidBasePrice,
			fmt.Sprintf("floor price %s must not be negative", cfg.FloorPrice))
	}

	return &Engine{cfg: cfg}, nil
}

func (e *Engine) BasePrice() decimal.Decimal {
	return e.cfg.BasePrice
}

// Quote prices a single time point. Adjustments apply in table order:
// day×hour, hour, season, then the event delta on top. The result is
// rounded to cents and clamped at the floor.
func (e *Engine) Quote(tp entity.TimePoint, event entity.EventTag) (entity.Quote, error) {
	if err := tp.Validate(); err != nil {
		return entity.Quote{}, err
	}

	price := e.cfg.BasePrice

	var factors []entity.Factor

	apply := func(name string, delta decimal.Decimal) {
		price = price.Add(delta)
		factors = append(factors, entity.Factor{Name: name, Delta: delta})
	}

	for _, r := range e.cfg.Rules.DayHour {
		if r.matches(tp) {
			apply(r.Name, r.Delta)
		}
	}

	for _, r := range e.cfg.Rules.Hour {
		if r.matches(tp) {
			apply(r.Name, r.Delta)
		}
	}

	for _, r := range e.cfg.Rules.Season {
		if r.matches(tp) {
			apply(r.Name, r.Delta)
		}
	}

	if event != entity.EventNone {
		factor, ok := e.cfg.Rules.Event[event]
		if !ok {
			return entity.Quote{}, domain.NewError(errcodes.UnknownEvent,
				fmt.Sprintf("event %q is not in the rule table", event))
		}
		apply(factor.Name, factor.Delta)
	}

	price = price.Round(2)
	if price.LessThan(e.cfg.FloorPrice) {
		price = e.cfg.FloorPrice.Round(2)
	}

	savings := e.cfg.BasePrice.Sub(price)
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	return entity.Quote{
		Time:           tp,
		Event:          event,
		Price:          price,
		BasePrice:      e.cfg.BasePrice,
		Savings:        savings,
		SavingsPercent: savings.Div(e.cfg.BasePrice).Mul(hundred).Round(2),
		Factors:        factors,
	}, nil
}
