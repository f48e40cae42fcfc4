package pricing

import (
	"github.com/shopspring/decimal"

	"sockpredict/internal/domain/entity"
)

// DayHourRule adds Delta when the day matches and the hour falls inside
// [FromHour, ToHour].
type DayHourRule struct {
	Name     string
	Days     []int
	FromHour int
	ToHour   int
	Delta    decimal.Decimal
}

func (r DayHourRule) matches(tp entity.TimePoint) bool {
	if tp.Hour < r.FromHour || tp.Hour > r.ToHour {
		return false
	}
	for _, day := range r.Days {
		if tp.DayOfWeek == day {
			return true
		}
	}
	return false
}

// HourRule adds Delta for hours inside [FromHour, ToHour] on any day.
type HourRule struct {
	Name     string
	FromHour int
	ToHour   int
	Delta    decimal.Decimal
}

func (r HourRule) matches(tp entity.TimePoint) bool {
	return tp.Hour >= r.FromHour && tp.Hour <= r.ToHour
}

// SeasonRule adds Delta for the listed months.
type SeasonRule struct {
	Name   string
	Months []int
	Delta  decimal.Decimal
}

func (r SeasonRule) matches(tp entity.TimePoint) bool {
	for _, month := range r.Months {
		if tp.Month == month {
			return true
		}
	}
	return false
}

// RuleTable is the full adjustment table. Adjustments are independent and
// additive; they apply in declaration order: day×hour, hour, season, event.
// Event deltas stack on top of the time adjustments rather than replacing
// them (the "additive" policy).
type RuleTable struct {
	DayHour []DayHourRule
	Hour    []HourRule
	Season  []SeasonRule
	Event   map[entity.EventTag]entity.Factor
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultRules is the shipped sock-pricing table.
func DefaultRules() RuleTable {
	return RuleTable{
		DayHour: []DayHourRule{
			{Name: "Monday morning rush", Days: []int{0}, FromHour: 6, ToHour: 10, Delta: d("1.50")},
			{Name: "Tuesday afternoon lull", Days: []int{1}, FromHour: 13, ToHour: 16, Delta: d("-2.00")},
			{Name: "Weekend evening shopping", Days: []int{5, 6}, FromHour: 18, ToHour: 22, Delta: d("0.75")},
		},
		Hour: []HourRule{
			{Name: "Peak shopping hours", FromHour: 9, ToHour: 21, Delta: d("0.50")},
			{Name: "Late night discount", FromHour: 0, ToHour: 6, Delta: d("-1.00")},
		},
		Season: []SeasonRule{
			{Name: "Winter season", Months: []int{12, 1, 2}, Delta: d("1.00")},
			{Name: "Summer clearance", Months: []int{6, 7, 8}, Delta: d("-0.75")},
		},
		Event: map[entity.EventTag]entity.Factor{
			entity.EventBackToSchool:    {Name: "Back-to-school rush", Delta: d("2.50")},
			entity.EventBlackFriday:     {Name: "Black Friday sale", Delta: d("-3.50")},
			entity.EventClearanceSeason: {Name: "Post-holiday clearance", Delta: d("-3.00")},
			entity.EventHoliday:         {Name: "National Sock Day premium", Delta: d("1.25")},
		},
	}
}
