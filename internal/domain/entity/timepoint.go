package entity

import (
	"fmt"
	"time"

	"sockpredict/internal/domain"
	"sockpredict/pkg/errcodes"
)

// TimePoint is a point on the pricing grid. DayOfWeek follows the model's
// convention: 0=Monday .. 6=Sunday. Month is 1..12.
type TimePoint struct {
	Hour      int `json:"hour"`
	DayOfWeek int `json:"day_of_week"`
	Month     int `json:"month"`
}

//nolint:gochecknoglobals
var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// TimePointOf converts a wall-clock time, shifting Go's Sunday-based
// weekday to the Monday-based grid.
func TimePointOf(t time.Time) TimePoint {
	return TimePoint{
		Hour:      t.Hour(),
		DayOfWeek: (int(t.Weekday()) + 6) % 7,
		Month:     int(t.Month()),
	}
}

// Validate rejects out-of-range fields. Values are never clamped.
func (p TimePoint) Validate() error {
	if p.Hour < 0 || p.Hour > 23 {
		return domain.NewError(errcodes.InvalidTimePoint, fmt.Sprintf("hour %d out of range [0,23]", p.Hour))
	}
	if p.DayOfWeek < 0 || p.DayOfWeek > 6 {
		return domain.NewError(errcodes.InvalidTimePoint, fmt.Sprintf("day_of_week %d out of range [0,6]", p.DayOfWeek))
	}
	if p.Month < 1 || p.Month > 12 {
		return domain.NewError(errcodes.InvalidTimePoint, fmt.Sprintf("month %d out of range [1,12]", p.Month))
	}
	return nil
}

// DayName returns the English weekday name, or "?" when out of range.
func (p TimePoint) DayName() string {
	if p.DayOfWeek < 0 || p.DayOfWeek > 6 {
		return "?"
	}
	return dayNames[p.DayOfWeek]
}

func (p TimePoint) String() string {
	return fmt.Sprintf("%s %02d:00 (month %d)", p.DayName(), p.Hour, p.Month)
}
