package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"punchlog/internal/dateutil"
)

var dateKeyRegex = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)

// ParseDateArg parses a date argument into a canonical YYYY-MM-DD key.
// Supported forms:
// - YYYY-MM-DD (e.g., "2024-03-04")
// - "today"
// - "yesterday"
func ParseDateArg(input string) (string, error) {
	switch input {
	case "today":
		return dateutil.ToDateKey(time.Now()), nil
	case "yesterday":
		return dateutil.ToDateKey(time.Now().AddDate(0, 0, -1)), nil
	}

	matches := dateKeyRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return "", fmt.Errorf("invalid date '%s'. Use: YYYY-MM-DD, today, or yesterday", input)
	}

	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	day, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return "", fmt.Errorf("invalid month in date '%s'", input)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if date.Day() != day {
		// time.Date normalized an out-of-range day (e.g. Feb 30).
		return "", fmt.Errorf("invalid day in date '%s'", input)
	}

	return dateutil.ToDateKey(date), nil
}
