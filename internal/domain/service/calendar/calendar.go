package calendar

import (
	"fmt"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"sockpredict/internal/domain"
	"sockpredict/internal/domain/entity"
	"sockpredict/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	exactDateLayout = "2006-01-02"
	monthDayLayout  = "01-02"
)

// Calendar resolves a concrete date to the event tag active on it. It is
// immutable after construction. Lookup precedence: exact date, recurring
// month-day, whole month.
type Calendar struct {
	exact     map[string]entity.EventTag // "2026-11-27"
	recurring map[string]entity.EventTag // "11-27", every year
	months    map[time.Month]entity.EventTag
}

// Default mirrors the dashboard's stock assumptions: September is
// back-to-school, Nov 24-25 is Black Friday, Dec 26-31 is post-holiday
// clearance and Dec 4 is National Sock Day.
func Default() *Calendar {
	recurring := map[string]entity.EventTag{
		"11-24": entity.EventBlackFriday,
		"11-25": entity.EventBlackFriday,
		"12-04": entity.EventHoliday,
	}
	for day := 26; day <= 31; day++ {
		recurring[fmt.Sprintf("12-%02d", day)] = entity.EventClearanceSeason
	}

	return &Calendar{
		exact:     map[string]entity.EventTag{},
		recurring: recurring,
		months: map[time.Month]entity.EventTag{
			time.September: entity.EventBackToSchool,
		},
	}
}

// Load returns the default calendar extended with entries from a JSON file
// of the form {"2026-11-27": "black_friday", "12-04": "holiday"}. Keys are
// exact dates (YYYY-MM-DD) or recurring month-days (MM-DD); file entries
// win over the defaults.
func Load(path string) (*Calendar, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	cal := Default()

	for key, value := range entries {
		tag, err := entity.ParseEventTag(value)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}

		switch strings.Count(key, "-") {
		case 2:
			if _, err := time.Parse(exactDateLayout, key); err != nil {
				return nil, domain.WrapError(err, errcodes.ValidationError,
					fmt.Sprintf("calendar key %q is not a YYYY-MM-DD date", key))
			}
			cal.exact[key] = tag
		case 1:
			if _, err := time.Parse(monthDayLayout, key); err != nil {
				return nil, domain.WrapError(err, errcodes.ValidationError,
					fmt.Sprintf("calendar key %q is not a MM-DD month-day", key))
			}
			cal.recurring[key] = tag
		default:
			return nil, domain.NewError(errcodes.ValidationError,
				fmt.Sprintf("calendar key %q must be YYYY-MM-DD or MM-DD", key))
		}
	}

	return cal, nil
}

// EventOn returns the tag active on the given date, or EventNone.
func (c *Calendar) EventOn(t time.Time) entity.EventTag {
	if tag, ok := c.exact[t.Format(exactDateLayout)]; ok {
		return tag
	}
	if tag, ok := c.recurring[t.Format(monthDayLayout)]; ok {
		return tag
	}
	if tag, ok := c.months[t.Month()]; ok {
		return tag
	}
	return entity.EventNone
}
