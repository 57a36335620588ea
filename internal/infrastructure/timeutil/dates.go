package timeutil

import (
	"math"
	"time"
)

// StayDateLayout is the wire format for hotel check-in and check-out dates.
const StayDateLayout = "2006-01-02"

// ParseStayDate parses a calendar date in StayDateLayout format.
func ParseStayDate(value string) (time.Time, error) {
	return time.Parse(StayDateLayout, value)
}

// FormatStayDate formats a time as a calendar date in StayDateLayout format.
func FormatStayDate(t time.Time) string {
	return t.Format(StayDateLayout)
}

// NightsBetween computes the length of a stay in nights: the ceiling of
// the day difference between check-in and check-out, with a minimum of 1.
func NightsBetween(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}
