package trend

import (
	"fmt"

	"sockpredict/internal/domain/entity"
	"sockpredict/internal/domain/service/pricing"
)

// Sampler derives series by evaluating the engine over a fixed grid. It
// keeps no state and never caches: every call recomputes from scratch.
type Sampler struct {
	engine *pricing.Engine
}

func NewSampler(engine *pricing.Engine) Sampler {
	return Sampler{engine: engine}
}

// SampleHourly prices all 24 hours of one day, in hour order.
func (s Sampler) SampleHourly(dayOfWeek, month int, event entity.EventTag) (entity.Series, error) {
	series := make(entity.Series, 0, 24)

	for hour := 0; hour < 24; hour++ {
		point, err := s.sample(entity.TimePoint{Hour: hour, DayOfWeek: dayOfWeek, Month: month}, event)
		if err != nil {
			return nil, fmt.Errorf("hour %d: %w", hour, err)
		}
		series = append(series, point)
	}

	return series, nil
}

// SampleWeekly prices all 7 days of the week at one fixed hour, Monday
// first.
func (s Sampler) SampleWeekly(hour, month int, event entity.EventTag) (entity.Series, error) {
	series := make(entity.Series, 0, 7)

	for day := 0; day < 7; day++ {
		point, err := s.sample(entity.TimePoint{Hour: hour, DayOfWeek: day, Month: month}, event)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", day, err)
		}
		series = append(series, point)
	}

	return series, nil
}

// SampleHeatmap prices the full 7×24 grid in (day, hour) order: 168 points,
// Monday 00:00 first.
func (s Sampler) SampleHeatmap(month int, event entity.EventTag) (entity.Series, error) {
	series := make(entity.Series, 0, 7*24)

	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			point, err := s.sample(entity.TimePoint{Hour: hour, DayOfWeek: day, Month: month}, event)
			if err != nil {
				return nil, fmt.Errorf("day %d hour %d: %w", day, hour, err)
			}
			series = append(series, point)
		}
	}

	return series, nil
}

func (s Sampler) sample(tp entity.TimePoint, event entity.EventTag) (entity.PricePoint, error) {
	quote, err := s.engine.Quote(tp, event)
	if err != nil {
		return entity.PricePoint{}, err
	}

	return entity.PricePoint{Time: quote.Time, Price: quote.Price}, nil
}
