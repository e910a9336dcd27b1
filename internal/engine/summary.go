package engine

import (
	"time"

	"punchlog/internal/dateutil"
)

// PeriodSummary totals a date range against its target.
type PeriodSummary struct {
	StartDate     string // YYYY-MM-DD
	EndDate       string // YYYY-MM-DD
	TotalMs       int64
	TargetMs      int64
	AheadBehindMs int64
}

// MonthlyAbsentSummary counts missed working days for one month.
type MonthlyAbsentSummary struct {
	Month       time.Month
	Year        int
	AbsentDays  int
	WorkingDays int
}

// Summary aggregates attendance across the current month and year.
type Summary struct {
	TotalPresentDays     int // distinct dates with any record, ever
	TotalAbsentDaysMonth int
	TotalAbsentDaysYear  int
	MonthlyAbsents       []MonthlyAbsentSummary
	AverageDailyHours    float64
	Month                PeriodSummary

	// CumulativeAheadBehindMs judges the month's total against present
	// working days only: an absent day never drags the figure down,
	// only under-working on a day with a record does.
	CumulativeAheadBehindMs int64
	WorkingDaysElapsed      int
	PresentWorkingDays      int
}

// Summary computes the aggregate view for the month and year containing now.
func (e *Engine) Summary(now time.Time) Summary {
	target := e.dailyTargetMs()

	allDates := make(map[string]struct{}, len(e.records))
	var sumMs int64
	for _, r := range e.records {
		allDates[r.Date] = struct{}{}
		if r.TotalMs != nil {
			sumMs += *r.TotalMs
		}
	}
	totalPresentDays := len(allDates)

	monthStart := dateutil.StartOfMonth(now)
	monthEnd := dateutil.EndOfMonth(now)
	monthStartKey := dateutil.ToDateKey(monthStart)
	monthEndKey := dateutil.ToDateKey(monthEnd)
	todayKey := dateutil.ToDateKey(now)

	// Month total up to today. Closed days contribute their stored total;
	// an open session today contributes its live elapsed time.
	var monthMs int64
	monthPresent := make(map[string]struct{})
	for _, r := range e.records {
		if !dateutil.Within(r.Date, monthStartKey, todayKey) {
			continue
		}
		monthPresent[r.Date] = struct{}{}
		if r.TotalMs != nil && *r.TotalMs > 0 {
			monthMs += *r.TotalMs
		} else if r.Date == todayKey && r.Open() {
			monthMs += dateutil.DiffMs(r.CheckIn, now)
		}
	}

	workingDaysElapsed, presentWorkingDays := workingDayCounts(monthStart, now, todayKey, monthPresent)
	workingDaysInMonth, _ := workingDayCounts(monthStart, monthEnd, monthEndKey, nil)

	cumulativeAheadBehindMs := monthMs - int64(presentWorkingDays)*target

	// The month target shows the full-month goal, while ahead/behind is
	// judged against present working days only. The two bases differ on
	// purpose.
	month := PeriodSummary{
		StartDate:     monthStartKey,
		EndDate:       monthEndKey,
		TotalMs:       monthMs,
		TargetMs:      int64(workingDaysInMonth) * target,
		AheadBehindMs: monthMs - int64(presentWorkingDays)*target,
	}

	daysElapsed := int(now.Sub(monthStart)/(24*time.Hour)) + 1
	if daysElapsed > monthEnd.Day() {
		daysElapsed = monthEnd.Day()
	}
	totalAbsentDaysMonth := daysElapsed - len(monthPresent)
	if totalAbsentDaysMonth < 0 {
		totalAbsentDaysMonth = 0
	}

	var averageDailyHours float64
	if totalPresentDays > 0 {
		averageDailyHours = dateutil.MsToHours(sumMs / int64(totalPresentDays))
	}

	return Summary{
		TotalPresentDays:        totalPresentDays,
		TotalAbsentDaysMonth:    totalAbsentDaysMonth,
		TotalAbsentDaysYear:     e.YearlyAbsents(now.Year(), now),
		MonthlyAbsents:          e.MonthlyAbsentsBreakdown(now),
		AverageDailyHours:       averageDailyHours,
		Month:                   month,
		CumulativeAheadBehindMs: cumulativeAheadBehindMs,
		WorkingDaysElapsed:      workingDaysElapsed,
		PresentWorkingDays:      presentWorkingDays,
	}
}

// YearlyAbsents returns the number of working days in the given year with
// no record, never negative. For the current year only days up to now count.
func (e *Engine) YearlyAbsents(year int, now time.Time) int {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
	end := dateutil.EndOfYear(yearStart)
	if year == now.Year() {
		end = now
	}
	endKey := dateutil.ToDateKey(end)
	yearStartKey := dateutil.ToDateKey(yearStart)

	present := make(map[string]struct{})
	for _, r := range e.records {
		if dateutil.Within(r.Date, yearStartKey, endKey) {
			present[r.Date] = struct{}{}
		}
	}

	workingDays, presentDays := workingDayCounts(yearStart, end, endKey, present)
	if absent := workingDays - presentDays; absent > 0 {
		return absent
	}
	return 0
}

// MonthlyAbsentsBreakdown returns absence counts per month of the current
// year, from January through the month containing now, with the current
// month clipped to today.
func (e *Engine) MonthlyAbsentsBreakdown(now time.Time) []MonthlyAbsentSummary {
	year := now.Year()
	var months []MonthlyAbsentSummary

	for m := time.January; m <= now.Month(); m++ {
		monthStart := time.Date(year, m, 1, 0, 0, 0, 0, now.Location())
		end := dateutil.EndOfMonth(monthStart)
		if m == now.Month() {
			end = now
		}
		startKey := dateutil.ToDateKey(monthStart)
		endKey := dateutil.ToDateKey(end)

		present := make(map[string]struct{})
		for _, r := range e.records {
			if dateutil.Within(r.Date, startKey, endKey) {
				present[r.Date] = struct{}{}
			}
		}

		workingDays, presentDays := workingDayCounts(monthStart, end, endKey, present)
		absent := workingDays - presentDays
		if absent < 0 {
			absent = 0
		}
		months = append(months, MonthlyAbsentSummary{
			Month:       m,
			Year:        year,
			AbsentDays:  absent,
			WorkingDays: workingDays,
		})
	}
	return months
}

// WeekDay is one day of a weekly breakdown.
type WeekDay struct {
	Date          time.Time
	DateKey       string
	TotalMs       int64
	Present       bool
	AheadBehindMs int64
}

// WeekSummary is a Monday-to-Sunday breakdown with week totals. The week
// target spans all seven days, weekends included.
type WeekSummary struct {
	StartDate     string // YYYY-MM-DD, Monday
	EndDate       string // YYYY-MM-DD, Sunday
	Days          []WeekDay
	TotalMs       int64
	TargetMs      int64
	AheadBehindMs int64
	PresentDays   int
}

// WeekSummary computes the per-day breakdown for the week containing ref.
func (e *Engine) WeekSummary(ref time.Time) WeekSummary {
	start := dateutil.StartOfWeek(ref)
	target := e.dailyTargetMs()

	ws := WeekSummary{
		StartDate: dateutil.ToDateKey(start),
		EndDate:   dateutil.ToDateKey(start.AddDate(0, 0, 6)),
	}

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		key := dateutil.ToDateKey(date)
		day := WeekDay{Date: date, DateKey: key, AheadBehindMs: e.DailyAheadBehind(key)}
		if rec := e.findByDate(key); rec != nil {
			day.Present = true
			if rec.TotalMs != nil {
				day.TotalMs = *rec.TotalMs
			}
		}
		ws.Days = append(ws.Days, day)
		ws.TotalMs += day.TotalMs
		if day.Present {
			ws.PresentDays++
		}
	}

	ws.TargetMs = 7 * target
	ws.AheadBehindMs = ws.TotalMs - ws.TargetMs
	return ws
}

// workingDayCounts walks the days from start through end (inclusive, capped
// at endKey) and counts working days, plus how many of them appear in
// present. A nil present map counts working days only.
func workingDayCounts(start, end time.Time, endKey string, present map[string]struct{}) (workingDays, presentDays int) {
	for d := dateutil.StartOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		key := dateutil.ToDateKey(d)
		if key > endKey {
			break
		}
		if !dateutil.IsWorkingDay(d) {
			continue
		}
		workingDays++
		if present != nil {
			if _, ok := present[key]; ok {
				presentDays++
			}
		}
	}
	return workingDays, presentDays
}
