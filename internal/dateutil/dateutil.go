package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKeyLayout is the canonical format of a calendar date key.
const DateKeyLayout = "2006-01-02"

// ToDateKey returns the YYYY-MM-DD key for the given local time
func ToDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into local midnight of that day.
// Missing or malformed parts default rather than fail.
func ParseDateKey(key string) time.Time {
	parts := strings.Split(key, "-")
	year := atoi(parts[0], 1)
	month, day := 1, 1
	if len(parts) > 1 {
		month = atoi(parts[1], 1)
	}
	if len(parts) > 2 {
		day = atoi(parts[2], 1)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

func atoi(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay returns the end of the day (23:59:59.999...) for the given date
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999999999, date.Location())
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return StartOfDay(date.AddDate(0, 0, -(weekday - 1)))
}

// EndOfWeek returns the Sunday of the week for the given date
func EndOfWeek(date time.Time) time.Time {
	return EndOfDay(StartOfWeek(date).AddDate(0, 0, 6))
}

// StartOfMonth returns the first day of the month at 00:00:00
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month at 23:59:59.999...
func EndOfMonth(date time.Time) time.Time {
	// Day zero of the next month normalizes to the last day of this one.
	return EndOfDay(time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()))
}

// StartOfYear returns January 1st of the date's year at 00:00:00
func StartOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
}

// EndOfYear returns December 31st of the date's year at 23:59:59.999...
func EndOfYear(date time.Time) time.Time {
	return EndOfDay(time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, date.Location()))
}

// IsWorkingDay returns true if the date is Monday-Friday
func IsWorkingDay(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// Within reports whether a date key falls inside [startKey, endKey].
// Date keys compare correctly as plain strings.
func Within(dateKey, startKey, endKey string) bool {
	return dateKey >= startKey && dateKey <= endKey
}

// CombineDateKeyAndClock builds an absolute local timestamp from a date key
// and an HH:MM clock string. With nextDay set the result moves one calendar
// day forward, which is how overnight checkouts are represented.
func CombineDateKeyAndClock(dateKey, hhmm string, nextDay bool) time.Time {
	base := ParseDateKey(dateKey)
	parts := strings.Split(hhmm, ":")
	hour := atoi(parts[0], 0)
	minute := 0
	if len(parts) > 1 {
		minute = atoi(parts[1], 0)
	}
	t := time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
	if nextDay {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// DiffMs returns the milliseconds between two timestamps, floored at zero.
// Sessions crossing midnight need no special casing because both ends are
// absolute timestamps.
func DiffMs(start, end time.Time) int64 {
	ms := end.Sub(start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// MsToHours converts milliseconds to decimal hours
func MsToHours(ms int64) float64 {
	return float64(ms) / float64(time.Hour/time.Millisecond)
}

// FormatDuration renders a millisecond duration as HH:MM.
// Negative inputs render as 00:00; callers format the sign themselves.
func FormatDuration(ms int64) string {
	totalSeconds := ms / 1000
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// FormatDurationHMS renders a millisecond duration as HH:MM:SS
func FormatDurationHMS(ms int64) string {
	totalSeconds := ms / 1000
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ClockHHMM renders the wall-clock time of a timestamp as HH:MM
func ClockHHMM(t time.Time) string {
	return t.Format("15:04")
}
