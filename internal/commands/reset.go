package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all attendance records",
	Long: `Delete every attendance record. This cannot be undone; the daily hours
target is kept. Requires --yes to confirm.`,
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes all attendance records and cannot be undone.")
			fmt.Println("Re-run with --yes to confirm.")
			return
		}

		appEngine.Reset()
		fmt.Println("🗑️  All attendance records deleted.")
	}),
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion of all records")
}
