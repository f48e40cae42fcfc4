package config

import "time"

type Pricing struct {
	// BasePrice overrides the $6.00 default.
	BasePrice float64 `env:"BASE_PRICE" envDefault:"6.00"`

	// FloorPrice is the lowest price the engine may quote.
	FloorPrice float64 `env:"FLOOR_PRICE" envDefault:"0.00"`

	// CalendarPath points to an optional JSON event calendar
	// ({"YYYY-MM-DD"|"MM-DD": event}); empty keeps the built-in one.
	CalendarPath string `env:"EVENT_CALENDAR_PATH"`

	// SpotInterval is how often the watcher re-quotes the current moment.
	SpotInterval time.Duration `env:"SPOT_WATCH_INTERVAL" envDefault:"1m"`
}
