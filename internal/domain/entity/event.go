package entity

import (
	"fmt"

	"sockpredict/internal/domain"
	"sockpredict/pkg/errcodes"
)

// EventTag marks a special calendar occasion with its own price delta.
// The empty tag means "no event".
type EventTag string

const (
	EventNone            EventTag = ""
	EventHoliday         EventTag = "holiday"
	EventBlackFriday     EventTag = "black_friday"
	EventBackToSchool    EventTag = "back_to_school"
	EventClearanceSeason EventTag = "clearance_season"
)

// ParseEventTag maps a wire value to a known tag. Unknown values are
// rejected, not treated as EventNone.
func ParseEventTag(s string) (EventTag, error) {
	switch EventTag(s) {
	case EventNone, EventTag("none"):
		return EventNone, nil
	case EventHoliday:
		return EventHoliday, nil
	case EventBlackFriday:
		return EventBlackFriday, nil
	case EventBackToSchool:
		return EventBackToSchool, nil
	case EventClearanceSeason:
		return EventClearanceSeason, nil
	default:
		return EventNone, domain.NewError(errcodes.UnknownEvent, fmt.Sprintf("unknown event tag %q", s))
	}
}

func (e EventTag) String() string {
	if e == EventNone {
		return "none"
	}
	return string(e)
}
