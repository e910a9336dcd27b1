package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"punchlog/internal/dateutil"
	"punchlog/internal/tui"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Check in for the day",
	Long: `Check in for the day. Opens the live status view by default, use --no-ui
for a plain check-in.

Checking in again on the same day restarts the session: the earlier
checkout and total for that day are discarded.`,
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		now := time.Now()
		appEngine.CheckIn(now)

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("🟢 Checked in at %s\n", now.Format("15:04:05"))
			return
		}
		if err := tui.RunStatusTUI(appEngine); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Check out and close the open session",
	Long: `Check out. Closes the most recently opened session, which may be
yesterday's if you are checking out after midnight.`,
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		now := time.Now()
		open := appEngine.OpenRecord()
		if open == nil {
			fmt.Println("No open session to check out.")
			return
		}

		appEngine.CheckOut(now)

		total := dateutil.DiffMs(open.CheckIn, now)
		fmt.Printf("🔴 Checked out at %s\n", now.Format("15:04:05"))
		fmt.Printf("Worked %s on %s (in at %s)\n",
			dateutil.FormatDuration(total), open.Date, dateutil.ClockHHMM(open.CheckIn))
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's attendance status",
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunStatusTUI(appEngine); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		now := time.Now()
		status := appEngine.TodayStatus(now)

		if status.CheckedIn {
			fmt.Printf("🟢 Checked in at %s\n", status.CheckInAt.Format("15:04:05"))
		} else if status.CheckInAt != nil {
			fmt.Printf("🔴 Checked out (in at %s)\n", status.CheckInAt.Format("15:04:05"))
		} else {
			fmt.Println("⚪ Not checked in today")
		}
		fmt.Printf("Worked today: %s\n", status.Formatted)
		fmt.Printf("Target delta: %s\n", formatAheadBehind(status.AheadBehindMs))
	}),
}

// formatAheadBehind renders a signed delta as +HH:MM or -HH:MM
func formatAheadBehind(ms int64) string {
	sign := "+"
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	return sign + dateutil.FormatDuration(ms)
}

func init() {
	inCmd.Flags().Bool("no-ui", false, "Check in without the live status view")
	statusCmd.Flags().Bool("no-ui", false, "Print a plain status instead of the live view")
}
