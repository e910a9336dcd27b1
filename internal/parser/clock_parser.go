package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseClock validates an HH:MM clock string and returns it in the
// normalized zero-padded form the engine expects.
func ParseClock(input string) (string, error) {
	matches := clockRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return "", fmt.Errorf("invalid time '%s'. Use: HH:MM (e.g., 09:30)", input)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])

	if hour > 23 {
		return "", fmt.Errorf("invalid hour in time '%s'", input)
	}
	if minute > 59 {
		return "", fmt.Errorf("invalid minute in time '%s'", input)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
