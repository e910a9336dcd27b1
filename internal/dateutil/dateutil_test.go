package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestToDateKey(t *testing.T) {
	got := ToDateKey(date(2024, time.March, 4, 23, 59))
	if got != "2024-03-04" {
		t.Errorf("ToDateKey = %q, want %q", got, "2024-03-04")
	}
}

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "full key",
			input:    "2024-03-04",
			expected: date(2024, time.March, 4, 0, 0),
		},
		{
			name:     "missing day defaults to 1",
			input:    "2024-03",
			expected: date(2024, time.March, 1, 0, 0),
		},
		{
			name:     "missing month and day default to January 1",
			input:    "2024",
			expected: date(2024, time.January, 1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseDateKey(tt.input)
			if !result.Equal(tt.expected) {
				t.Errorf("ParseDateKey(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Wednesday returns Monday",
			input:    date(2024, time.March, 6, 12, 0),
			expected: date(2024, time.March, 4, 0, 0),
		},
		{
			name:     "Monday returns same Monday",
			input:    date(2024, time.March, 4, 12, 0),
			expected: date(2024, time.March, 4, 0, 0),
		},
		{
			name:     "Sunday returns previous Monday",
			input:    date(2024, time.March, 10, 12, 0),
			expected: date(2024, time.March, 4, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfWeek(tt.input)
			if !result.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"),
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   time.Time
		wantDay int
	}{
		{"March has 31", date(2024, time.March, 4, 0, 0), 31},
		{"leap February has 29", date(2024, time.February, 10, 0, 0), 29},
		{"plain February has 28", date(2023, time.February, 10, 0, 0), 28},
		{"April has 30", date(2024, time.April, 1, 0, 0), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EndOfMonth(tt.input)
			if result.Day() != tt.wantDay || result.Month() != tt.input.Month() {
				t.Errorf("EndOfMonth(%v) = %v, want day %d", tt.input, result, tt.wantDay)
			}
			if result.Hour() != 23 || result.Minute() != 59 {
				t.Errorf("EndOfMonth(%v) not at end of day: %v", tt.input, result)
			}
		})
	}
}

func TestIsWorkingDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{"Monday", date(2024, time.March, 4, 0, 0), true},
		{"Friday", date(2024, time.March, 8, 0, 0), true},
		{"Saturday", date(2024, time.March, 9, 0, 0), false},
		{"Sunday", date(2024, time.March, 10, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWorkingDay(tt.input); got != tt.expected {
				t.Errorf("IsWorkingDay(%s) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestWithin(t *testing.T) {
	if !Within("2024-03-04", "2024-03-01", "2024-03-31") {
		t.Error("date inside the range should be within")
	}
	if !Within("2024-03-01", "2024-03-01", "2024-03-31") {
		t.Error("range bounds are inclusive")
	}
	if Within("2024-02-29", "2024-03-01", "2024-03-31") {
		t.Error("date before the range should not be within")
	}
}

func TestCombineDateKeyAndClock(t *testing.T) {
	got := CombineDateKeyAndClock("2024-01-10", "22:00", false)
	if !got.Equal(date(2024, time.January, 10, 22, 0)) {
		t.Errorf("CombineDateKeyAndClock same day = %v", got)
	}

	next := CombineDateKeyAndClock("2024-01-10", "02:00", true)
	if !next.Equal(date(2024, time.January, 11, 2, 0)) {
		t.Errorf("CombineDateKeyAndClock next day = %v, want Jan 11 02:00", next)
	}
}

func TestDiffMs(t *testing.T) {
	start := date(2024, time.March, 4, 22, 0)
	end := date(2024, time.March, 5, 2, 0)

	if got := DiffMs(start, end); got != 4*3600*1000 {
		t.Errorf("DiffMs across midnight = %d, want %d", got, 4*3600*1000)
	}
	if got := DiffMs(end, start); got != 0 {
		t.Errorf("DiffMs negative span = %d, want 0", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		expected string
	}{
		{"zero", 0, "00:00"},
		{"nine and a half hours", 9*3600*1000 + 30*60*1000, "09:30"},
		{"minutes floor seconds", 90 * 1000, "00:01"},
		{"negative clamps to zero", -5000, "00:00"},
		{"over a day keeps counting hours", 26 * 3600 * 1000, "26:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.ms); got != tt.expected {
				t.Errorf("FormatDuration(%d) = %q, want %q", tt.ms, got, tt.expected)
			}
		})
	}
}

func TestFormatDurationHMS(t *testing.T) {
	if got := FormatDurationHMS(3723 * 1000); got != "01:02:03" {
		t.Errorf("FormatDurationHMS = %q, want 01:02:03", got)
	}
}

func TestMsToHours(t *testing.T) {
	if got := MsToHours(9 * 3600 * 1000); got != 9.0 {
		t.Errorf("MsToHours = %f, want 9.0", got)
	}
}
