package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"punchlog/internal/dateutil"
	"punchlog/internal/parser"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the month summary and absence figures",
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		now := time.Now()
		summary := appEngine.Summary(now)

		fmt.Printf("📊 %s\n\n", now.Format("January 2006"))
		fmt.Printf("Worked this month:     %s\n", dateutil.FormatDuration(summary.Month.TotalMs))
		fmt.Printf("Month target:          %s\n", dateutil.FormatDuration(summary.Month.TargetMs))
		fmt.Printf("Ahead/behind:          %s\n", formatAheadBehind(summary.CumulativeAheadBehindMs))
		fmt.Printf("Working days elapsed:  %d (present on %d)\n", summary.WorkingDaysElapsed, summary.PresentWorkingDays)
		fmt.Println()
		fmt.Printf("Present days (all time): %d\n", summary.TotalPresentDays)
		fmt.Printf("Average daily hours:     %.2f\n", summary.AverageDailyHours)
		fmt.Printf("Absent days this month:  %d\n", summary.TotalAbsentDaysMonth)
		fmt.Printf("Absent days this year:   %d\n", summary.TotalAbsentDaysYear)
	}),
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show a weekly breakdown",
	Long: `Show a Monday-to-Sunday breakdown for the current week, or for the week
containing a given date.

Examples:
  punchlog week
  punchlog week --date 2024-03-04`,
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		ref := time.Now()
		if dateArg, _ := cmd.Flags().GetString("date"); dateArg != "" {
			dateKey, err := parser.ParseDateArg(dateArg)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			ref = dateutil.ParseDateKey(dateKey)
		}

		week := appEngine.WeekSummary(ref)

		fmt.Printf("📅 Week %s — %s\n\n", week.StartDate, week.EndDate)
		fmt.Printf("%-12s %-10s %-8s %s\n", "DATE", "DAY", "TOTAL", "DELTA")
		fmt.Println(strings.Repeat("-", 40))
		for _, day := range week.Days {
			total := "-"
			if day.Present {
				total = dateutil.FormatDuration(day.TotalMs)
			}
			fmt.Printf("%-12s %-10s %-8s %s\n",
				day.DateKey,
				day.Date.Format("Monday"),
				total,
				formatAheadBehind(day.AheadBehindMs))
		}
		fmt.Println(strings.Repeat("-", 40))
		fmt.Printf("Total %s of %s (%s), present %d/7\n",
			dateutil.FormatDuration(week.TotalMs),
			dateutil.FormatDuration(week.TargetMs),
			formatAheadBehind(week.AheadBehindMs),
			week.PresentDays)
	}),
}

var absentsCmd = &cobra.Command{
	Use:   "absents",
	Short: "Show the monthly absence breakdown for this year",
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		months := appEngine.MonthlyAbsentsBreakdown(time.Now())

		fmt.Printf("%-12s %-8s %s\n", "MONTH", "ABSENT", "WORKING DAYS")
		fmt.Println(strings.Repeat("-", 32))
		for _, m := range months {
			fmt.Printf("%-12s %-8d %d\n", m.Month.String(), m.AbsentDays, m.WorkingDays)
		}
	}),
}

func init() {
	weekCmd.Flags().String("date", "", "Any date inside the week to show (YYYY-MM-DD)")
}
