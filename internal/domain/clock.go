package domain

import (
	"fmt"
	"math"
	"time"
)

// clockLayout is the wire format for wall-clock times: 24-hour, zero-padded.
const clockLayout = "15:04"

// Clock is a wall-clock time of day (hour and minute, no date). All
// arithmetic happens on a 24-hour wheel.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a strict zero-padded HH:MM string. Any other shape
// returns ErrInvalidTimeFormat.
func ParseClock(s string) (Clock, error) {
	// time.Parse alone would accept a single-digit hour, so pin the shape first.
	if len(s) != 5 || s[2] != ':' {
		return Clock{}, fmt.Errorf("%w: %q is not a valid HH:MM time", ErrInvalidTimeFormat, s)
	}
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q is not a valid HH:MM time", ErrInvalidTimeFormat, s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// IsClockString reports whether s is a valid zero-padded HH:MM string.
func IsClockString(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Hours returns the clock position as a real-valued hour in [0, 24).
func (c Clock) Hours() float64 {
	return float64(c.Hour) + float64(c.Minute)/60
}

// AddHours returns the clock shifted forward by h hours, wrapping past
// midnight.
func (c Clock) AddHours(h float64) Clock {
	return ClockFromHours(c.Hours() + h)
}

// ClockFromHours converts a real-valued hour to a Clock, wrapping modulo 24.
// Minutes are rounded to the nearest whole minute.
func ClockFromHours(h float64) Clock {
	minutes := int(math.Round(h * 60))
	minutes = ((minutes % 1440) + 1440) % 1440
	return Clock{Hour: minutes / 60, Minute: minutes % 60}
}

// HoursBetween returns the duration in hours from sleep to wake on the
// 24-hour wheel. Wake is always treated as occurring after sleep, so the
// result is in (0, 24]: equal times mean a full day, not an empty interval.
func HoursBetween(sleep, wake Clock) float64 {
	d := wake.Hours() - sleep.Hours()
	if d <= 0 {
		d += 24
	}
	return d
}
