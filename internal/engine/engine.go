package engine

import (
	"sort"
	"time"

	"punchlog/internal/dateutil"
	"punchlog/internal/models"
)

// Storage is the persistence collaborator for the engine. Implementations
// never surface errors: a broken backend returns an empty record set and
// the engine keeps running with ephemeral state.
type Storage interface {
	Load() []models.AttendanceRecord
	Save(records []models.AttendanceRecord)
	Clear()
	DailyHoursLimit() float64
	SetDailyHoursLimit(hours float64)
}

// Engine owns the attendance record set and derives every status and
// summary from it. All operations are synchronous and total, and every
// mutation is mirrored to storage before it returns. Derived views are
// recomputed on each call; live refresh belongs to the caller's timer.
type Engine struct {
	storage Storage
	records []models.AttendanceRecord // insertion order
}

// New creates an engine backed by the given storage, loading the current
// record set once.
func New(storage Storage) *Engine {
	return &Engine{
		storage: storage,
		records: storage.Load(),
	}
}

// CheckIn opens a session for the day of now. If the day already has a
// record it is re-opened: check-in moves to now and any checkout and total
// from the earlier session are discarded.
func (e *Engine) CheckIn(now time.Time) {
	dateKey := dateutil.ToDateKey(now)
	if rec := e.findByDate(dateKey); rec != nil {
		rec.CheckIn = now
		rec.CheckOut = nil
		rec.TotalMs = nil
		e.persist()
		return
	}
	e.records = append(e.records, models.AttendanceRecord{Date: dateKey, CheckIn: now})
	e.persist()
}

// CheckOut closes the most recently opened session. The record keeps its
// check-in date, so a checkout made after midnight still closes yesterday's
// session. Without an open session this is a no-op.
func (e *Engine) CheckOut(now time.Time) {
	for i := len(e.records) - 1; i >= 0; i-- {
		rec := &e.records[i]
		if !rec.Open() {
			continue
		}
		out := now
		total := dateutil.DiffMs(rec.CheckIn, now)
		rec.CheckOut = &out
		rec.TotalMs = &total
		e.persist()
		return
	}
}

// OpenRecord returns a copy of the most recently opened session, or nil if
// every record is closed.
func (e *Engine) OpenRecord() *models.AttendanceRecord {
	for i := len(e.records) - 1; i >= 0; i-- {
		if e.records[i].Open() {
			rec := e.records[i]
			return &rec
		}
	}
	return nil
}

// Record returns a copy of the record for the given date key, if one exists.
func (e *Engine) Record(dateKey string) (models.AttendanceRecord, bool) {
	if rec := e.findByDate(dateKey); rec != nil {
		return *rec, true
	}
	return models.AttendanceRecord{}, false
}

// Reset deletes every record, in memory and in storage. The daily hours
// limit survives. Confirmation is the caller's responsibility.
func (e *Engine) Reset() {
	e.records = nil
	e.storage.Clear()
}

// DailyList returns all records sorted by date key
func (e *Engine) DailyList() []models.AttendanceRecord {
	list := make([]models.AttendanceRecord, len(e.records))
	copy(list, e.records)
	sortByDate(list)
	return list
}

// TodayStatus describes the current day's session and its delta against
// the daily target.
type TodayStatus struct {
	CheckedIn            bool
	CheckInAt            *time.Time
	WorkedMs             int64
	Formatted            string // HH:MM
	AheadBehindMs        int64  // positive = ahead of target
	AheadBehindFormatted string // HH:MM, unsigned
}

// Weekday absences are only confirmed once the evening is reached; before
// that an empty day still counts as behind target.
const absenceCutoffHour = 18

// TodayStatus reports the state of the day containing now.
//
// For a day with no record the delta policy depends on the clock: weekends
// are always neutral, a weekday past the cutoff hour is treated as a
// confirmed absence (also neutral), and a weekday before the cutoff is
// reported fully behind target.
func (e *Engine) TodayStatus(now time.Time) TodayStatus {
	target := e.dailyTargetMs()
	rec := e.findByDate(dateutil.ToDateKey(now))

	if rec == nil {
		if !dateutil.IsWorkingDay(now) || now.Hour() >= absenceCutoffHour {
			return TodayStatus{
				Formatted:            dateutil.FormatDuration(0),
				AheadBehindFormatted: dateutil.FormatDuration(0),
			}
		}
		return TodayStatus{
			Formatted:            dateutil.FormatDuration(0),
			AheadBehindMs:        -target,
			AheadBehindFormatted: dateutil.FormatDuration(target),
		}
	}

	checkIn := rec.CheckIn
	if rec.Open() {
		worked := dateutil.DiffMs(checkIn, now)
		return TodayStatus{
			CheckedIn:            true,
			CheckInAt:            &checkIn,
			WorkedMs:             worked,
			Formatted:            dateutil.FormatDuration(worked),
			AheadBehindMs:        worked - target,
			AheadBehindFormatted: dateutil.FormatDuration(abs(worked - target)),
		}
	}

	var worked int64
	if rec.TotalMs != nil {
		worked = *rec.TotalMs
	}
	return TodayStatus{
		CheckInAt:            &checkIn,
		WorkedMs:             worked,
		Formatted:            dateutil.FormatDuration(worked),
		AheadBehindMs:        worked - target,
		AheadBehindFormatted: dateutil.FormatDuration(abs(worked - target)),
	}
}

// DailyAheadBehind returns worked minus target for the given date, in
// milliseconds. A date with no record returns exactly zero: absent days are
// neutral in this per-day view.
func (e *Engine) DailyAheadBehind(dateKey string) int64 {
	rec := e.findByDate(dateKey)
	if rec == nil {
		return 0
	}
	var worked int64
	if rec.TotalMs != nil {
		worked = *rec.TotalMs
	}
	return worked - e.dailyTargetMs()
}

// SetTimesByClock overwrites a day's check-in and checkout from HH:MM clock
// strings, creating the record if needed. A checkout clock earlier than the
// check-in clock is read as an overnight shift and lands on the next
// calendar day.
func (e *Engine) SetTimesByClock(dateKey, checkInHHMM, checkOutHHMM string) {
	checkIn := dateutil.CombineDateKeyAndClock(dateKey, checkInHHMM, false)
	checkOut := dateutil.CombineDateKeyAndClock(dateKey, checkOutHHMM, false)
	if checkOut.Before(checkIn) {
		checkOut = dateutil.CombineDateKeyAndClock(dateKey, checkOutHHMM, true)
	}

	rec := e.findByDate(dateKey)
	if rec == nil {
		e.records = append(e.records, models.AttendanceRecord{Date: dateKey, CheckIn: checkIn})
		rec = &e.records[len(e.records)-1]
	}

	total := dateutil.DiffMs(checkIn, checkOut)
	rec.CheckIn = checkIn
	rec.CheckOut = &checkOut
	rec.TotalMs = &total
	e.persist()
}

// SetCheckInByClock moves only a day's check-in time. An open session stays
// open with its total cleared; a closed session keeps its checkout and gets
// its total recomputed.
func (e *Engine) SetCheckInByClock(dateKey, checkInHHMM string) {
	checkIn := dateutil.CombineDateKeyAndClock(dateKey, checkInHHMM, false)

	rec := e.findByDate(dateKey)
	if rec == nil {
		e.records = append(e.records, models.AttendanceRecord{Date: dateKey, CheckIn: checkIn})
		e.persist()
		return
	}

	rec.CheckIn = checkIn
	if rec.Open() {
		rec.TotalMs = nil
	} else {
		total := dateutil.DiffMs(checkIn, *rec.CheckOut)
		rec.TotalMs = &total
	}
	e.persist()
}

// SetTotalMs sets a day's worked total directly. For a day with no record a
// session starting at local midnight is created; the checkout is derived as
// check-in plus the total.
func (e *Engine) SetTotalMs(dateKey string, totalMs int64) {
	if totalMs < 0 {
		totalMs = 0
	}

	rec := e.findByDate(dateKey)
	if rec == nil {
		e.records = append(e.records, models.AttendanceRecord{Date: dateKey, CheckIn: dateutil.ParseDateKey(dateKey)})
		rec = &e.records[len(e.records)-1]
	}

	checkOut := rec.CheckIn.Add(time.Duration(totalMs) * time.Millisecond)
	rec.CheckOut = &checkOut
	rec.TotalMs = &totalMs
	e.persist()
}

// DailyHoursLimit returns the configured daily target in hours
func (e *Engine) DailyHoursLimit() float64 {
	return e.storage.DailyHoursLimit()
}

// SetDailyHoursLimit updates the daily target. Values outside (0, 24] are
// ignored and the prior value is kept.
func (e *Engine) SetDailyHoursLimit(hours float64) {
	if hours <= 0 || hours > 24 {
		return
	}
	e.storage.SetDailyHoursLimit(hours)
}

func (e *Engine) dailyTargetMs() int64 {
	return int64(e.DailyHoursLimit() * float64(time.Hour/time.Millisecond))
}

func (e *Engine) findByDate(dateKey string) *models.AttendanceRecord {
	for i := range e.records {
		if e.records[i].Date == dateKey {
			return &e.records[i]
		}
	}
	return nil
}

func (e *Engine) persist() {
	e.storage.Save(e.records)
}

func sortByDate(list []models.AttendanceRecord) {
	sort.Slice(list, func(i, j int) bool { return list[i].Date < list[j].Date })
}

func abs(ms int64) int64 {
	if ms < 0 {
		return -ms
	}
	return ms
}
