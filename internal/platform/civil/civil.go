// Package civil provides wall-clock date and time-of-day values for
// scheduling. Appointments are keyed on the civil date and time the patient
// sees, independent of server time zone.
package civil

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Date is a calendar date in "YYYY-MM-DD" form.
type Date string

// Clock is a time of day in zero-padded "HH:MM" form. Because the form is
// fixed width, lexical ordering matches temporal ordering.
type Clock string

// ParseDate validates and normalizes a calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return Date(t.Format(DateLayout)), nil
}

// ParseClock validates and normalizes a time of day. Seconds, when present,
// are truncated: bookings are minute-granular.
func ParseClock(s string) (Clock, error) {
	for _, layout := range []string{ClockLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Clock(t.Format(ClockLayout)), nil
		}
	}
	return "", fmt.Errorf("invalid time %q: want HH:MM", s)
}

// Before reports whether c is strictly earlier in the day than o.
func (c Clock) Before(o Clock) bool { return string(c) < string(o) }

func (d Date) String() string  { return string(d) }
func (c Clock) String() string { return string(c) }
