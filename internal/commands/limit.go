package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var limitCmd = &cobra.Command{
	Use:   "limit [hours]",
	Short: "Show or set the daily hours target",
	Long: `Show or set the daily hours target used for all ahead/behind figures.
Must be greater than 0 and at most 24.

Examples:
  punchlog limit       # show the current target
  punchlog limit 8.5   # work 8.5 hours per day`,
	Args: cobra.MaximumNArgs(1),
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Printf("Daily hours target: %g\n", appEngine.DailyHoursLimit())
			return
		}

		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			fmt.Printf("Error: invalid hours '%s'\n", args[0])
			return
		}
		if hours <= 0 || hours > 24 {
			fmt.Println("Error: hours must be greater than 0 and at most 24")
			return
		}

		appEngine.SetDailyHoursLimit(hours)
		fmt.Printf("Daily hours target set to %g\n", hours)
	}),
}
