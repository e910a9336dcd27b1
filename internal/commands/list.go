package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"punchlog/internal/dateutil"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List all attendance records",
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		records := appEngine.DailyList()
		if len(records) == 0 {
			fmt.Println("No attendance records yet. Use 'punchlog in' to check in.")
			return
		}

		fmt.Printf("%-12s %-10s %-7s %-7s %-7s %s\n", "DATE", "DAY", "IN", "OUT", "TOTAL", "DELTA")
		fmt.Println(strings.Repeat("-", 56))

		for _, rec := range records {
			day := dateutil.ParseDateKey(rec.Date).Format("Monday")

			out := "-"
			if rec.CheckOut != nil {
				out = dateutil.ClockHHMM(*rec.CheckOut)
			}
			total := "-"
			if rec.TotalMs != nil {
				total = dateutil.FormatDuration(*rec.TotalMs)
			} else if rec.Open() {
				total = "open"
			}

			fmt.Printf("%-12s %-10s %-7s %-7s %-7s %s\n",
				rec.Date,
				day,
				dateutil.ClockHHMM(rec.CheckIn),
				out,
				total,
				formatAheadBehind(appEngine.DailyAheadBehind(rec.Date)))
		}
	}),
}
