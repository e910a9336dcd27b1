package models

import (
	"time"
)

// AttendanceRecord represents one day's attendance, keyed by its check-in date
type AttendanceRecord struct {
	Date     string `gorm:"primaryKey;size:10" json:"date"` // YYYY-MM-DD
	Position int    `gorm:"not null;index" json:"-"`        // insertion order

	CheckIn  time.Time  `gorm:"not null" json:"check_in"`
	CheckOut *time.Time `json:"check_out,omitempty"`
	TotalMs  *int64     `json:"total_ms,omitempty"` // set once checked out
}

// Open reports whether the session is still running (no checkout yet).
func (r *AttendanceRecord) Open() bool {
	return r.CheckOut == nil
}

// Setting represents a single scalar configuration slot, persisted
// independently of the attendance records.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}
