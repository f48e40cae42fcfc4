package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Pricing domain.
	InvalidTimePoint failure.ErrorCode = "InvalidTimePoint" // hour/day/month outside its range
	UnknownEvent     failure.ErrorCode = "UnknownEvent"     // event tag missing from the rule table
	EmptySeries      failure.ErrorCode = "EmptySeries"      // recommendation over zero points
	InvalidBasePrice failure.ErrorCode = "InvalidBasePrice"
)
