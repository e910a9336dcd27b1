package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"punchlog/internal/dateutil"
	"punchlog/internal/parser"
)

var editCmd = &cobra.Command{
	Use:   "edit <date> <check-in> [check-out]",
	Short: "Correct a day's check-in and checkout times",
	Long: `Correct a day's times manually. With both clock times the day's session is
overwritten; with only a check-in time the checkout (if any) is kept and the
total recomputed. A checkout earlier than the check-in is read as an
overnight shift ending the next day.

Examples:
  punchlog edit 2024-03-04 09:00 18:30
  punchlog edit yesterday 22:00 02:00
  punchlog edit today 08:45`,
	Args: cobra.RangeArgs(2, 3),
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		dateKey, err := parser.ParseDateArg(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		checkIn, err := parser.ParseClock(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(args) == 2 {
			appEngine.SetCheckInByClock(dateKey, checkIn)
			fmt.Printf("✏️  %s: check-in set to %s\n", dateKey, checkIn)
			return
		}

		checkOut, err := parser.ParseClock(args[2])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		appEngine.SetTimesByClock(dateKey, checkIn, checkOut)
		rec, _ := appEngine.Record(dateKey)
		total := int64(0)
		if rec.TotalMs != nil {
			total = *rec.TotalMs
		}
		fmt.Printf("✏️  %s: %s to %s, total %s\n",
			dateKey, checkIn, checkOut, dateutil.FormatDuration(total))
	}),
}
