package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hourMs = int64(3600 * 1000)

func TestSummaryRoundTripSingleRecord(t *testing.T) {
	eng, _ := newTestEngine(t)

	eng.CheckIn(at(2024, time.March, 4, 9, 0))
	eng.CheckOut(at(2024, time.March, 4, 18, 30))

	summary := eng.Summary(at(2024, time.March, 4, 19, 0))

	assert.Equal(t, 9*hourMs+hourMs/2, summary.Month.TotalMs)
	assert.Equal(t, 1, summary.TotalPresentDays)
	assert.Equal(t, 1, summary.PresentWorkingDays)
	// March 2024 starts on a Friday: Mar 1 and Mar 4 have elapsed by now.
	assert.Equal(t, 2, summary.WorkingDaysElapsed)
	// Judged against the one present day only.
	assert.Equal(t, hourMs/2, summary.CumulativeAheadBehindMs)
	assert.Equal(t, hourMs/2, summary.Month.AheadBehindMs)
}

func TestSummaryMonthTargetCoversFullMonth(t *testing.T) {
	eng, _ := newTestEngine(t)

	summary := eng.Summary(at(2024, time.March, 4, 12, 0))

	// March 2024 has 21 working days; the displayed target covers all of
	// them even though ahead/behind is judged against present days.
	assert.Equal(t, 21*9*hourMs, summary.Month.TargetMs)
	assert.Equal(t, "2024-03-01", summary.Month.StartDate)
	assert.Equal(t, "2024-03-31", summary.Month.EndDate)
}

func TestSummaryCountsOpenSessionToday(t *testing.T) {
	eng, _ := newTestEngine(t)

	eng.CheckIn(at(2024, time.March, 4, 9, 0))
	summary := eng.Summary(at(2024, time.March, 4, 13, 0))

	assert.Equal(t, 4*hourMs, summary.Month.TotalMs)
}

func TestSummaryWeekendRecordsExcludedFromWorkingDays(t *testing.T) {
	eng, _ := newTestEngine(t)

	// Saturday March 2nd: the total counts, the day does not.
	eng.SetTimesByClock("2024-03-02", "10:00", "14:00")
	summary := eng.Summary(at(2024, time.March, 4, 12, 0))

	assert.Equal(t, 4*hourMs, summary.Month.TotalMs)
	assert.Equal(t, 2, summary.WorkingDaysElapsed, "Mar 1 (Fri) and Mar 4 (Mon)")
	assert.Equal(t, 0, summary.PresentWorkingDays)
	assert.Equal(t, 4*hourMs, summary.CumulativeAheadBehindMs)
}

func TestSummaryAbsenceNeverDragsCumulativeDown(t *testing.T) {
	eng, _ := newTestEngine(t)

	// Present only on March 4th, absent March 1st. The absence is neutral:
	// the cumulative figure judges present days only.
	eng.SetTimesByClock("2024-03-04", "09:00", "18:00")
	summary := eng.Summary(at(2024, time.March, 4, 19, 0))

	assert.Equal(t, int64(0), summary.CumulativeAheadBehindMs)
	assert.Equal(t, 2, summary.WorkingDaysElapsed)
	assert.Equal(t, 1, summary.PresentWorkingDays)
}

func TestSummaryAverageDailyHours(t *testing.T) {
	eng, _ := newTestEngine(t)

	eng.SetTimesByClock("2024-03-04", "09:00", "17:00") // 8h
	eng.SetTimesByClock("2024-03-05", "09:00", "19:00") // 10h

	summary := eng.Summary(at(2024, time.March, 5, 20, 0))
	assert.InDelta(t, 9.0, summary.AverageDailyHours, 0.001)
}

func TestSummaryAbsentDaysMonth(t *testing.T) {
	eng, _ := newTestEngine(t)

	eng.SetTimesByClock("2024-03-04", "09:00", "17:00")
	summary := eng.Summary(at(2024, time.March, 4, 19, 0))

	// Four calendar days elapsed (Mar 1-4), present on one.
	assert.Equal(t, 3, summary.TotalAbsentDaysMonth)
}

func TestYearlyAbsentsClippedToToday(t *testing.T) {
	eng, _ := newTestEngine(t)

	eng.SetTimesByClock("2024-01-02", "09:00", "17:00")

	// Jan 1 (Mon) and Jan 2 (Tue) of 2024 have elapsed; present on one.
	absents := eng.YearlyAbsents(2024, at(2024, time.January, 2, 19, 0))
	assert.Equal(t, 1, absents)
}

func TestYearlyAbsentsIgnoresWeekendRecords(t *testing.T) {
	eng, _ := newTestEngine(t)

	// Jan 6 2024 is a Saturday; a weekend record earns no presence credit.
	eng.SetTimesByClock("2024-01-06", "09:00", "17:00")
	absents := eng.YearlyAbsents(2024, at(2024, time.January, 6, 19, 0))
	assert.Equal(t, 5, absents, "Jan 1-5 2024 are all working days")
}

func TestMonthlyAbsentsBreakdownRunsThroughCurrentMonth(t *testing.T) {
	eng, _ := newTestEngine(t)

	months := eng.MonthlyAbsentsBreakdown(at(2024, time.March, 4, 12, 0))
	require.Len(t, months, 3)

	// January 2024 has 23 working days, February 21; no records at all.
	assert.Equal(t, time.January, months[0].Month)
	assert.Equal(t, 23, months[0].WorkingDays)
	assert.Equal(t, 23, months[0].AbsentDays)
	assert.Equal(t, 21, months[1].WorkingDays)

	// March is clipped to today: Mar 1 (Fri) and Mar 4 (Mon).
	assert.Equal(t, time.March, months[2].Month)
	assert.Equal(t, 2, months[2].WorkingDays)
	assert.Equal(t, 2, months[2].AbsentDays)
}

func TestMonthlyAbsentsBreakdownCountsPresence(t *testing.T) {
	eng, _ := newTestEngine(t)

	eng.SetTimesByClock("2024-03-01", "09:00", "18:00")
	months := eng.MonthlyAbsentsBreakdown(at(2024, time.March, 4, 12, 0))

	require.Len(t, months, 3)
	assert.Equal(t, 1, months[2].AbsentDays)
}

func TestWeekSummary(t *testing.T) {
	eng, _ := newTestEngine(t)

	eng.SetTimesByClock("2024-03-04", "09:00", "18:30") // Monday, 9.5h

	week := eng.WeekSummary(at(2024, time.March, 6, 12, 0))

	assert.Equal(t, "2024-03-04", week.StartDate)
	assert.Equal(t, "2024-03-10", week.EndDate)
	require.Len(t, week.Days, 7)

	assert.True(t, week.Days[0].Present)
	assert.Equal(t, 9*hourMs+hourMs/2, week.Days[0].TotalMs)
	assert.Equal(t, hourMs/2, week.Days[0].AheadBehindMs)

	assert.False(t, week.Days[1].Present)
	assert.Equal(t, int64(0), week.Days[1].AheadBehindMs, "absent day is neutral")

	assert.Equal(t, 9*hourMs+hourMs/2, week.TotalMs)
	assert.Equal(t, 7*9*hourMs, week.TargetMs)
	assert.Equal(t, week.TotalMs-week.TargetMs, week.AheadBehindMs)
	assert.Equal(t, 1, week.PresentDays)
}

func TestSummaryWithCustomLimit(t *testing.T) {
	eng, _ := newTestEngine(t)
	eng.SetDailyHoursLimit(8)

	eng.SetTimesByClock("2024-03-04", "09:00", "18:00") // 9h against an 8h target
	summary := eng.Summary(at(2024, time.March, 4, 19, 0))

	assert.Equal(t, hourMs, summary.CumulativeAheadBehindMs)
	assert.Equal(t, 21*8*hourMs, summary.Month.TargetMs)
}
