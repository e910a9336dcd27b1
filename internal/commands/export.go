package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"punchlog/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export attendance records as CSV",
	Long: `Export all attendance records as CSV, to stdout or a file.

Examples:
  punchlog export
  punchlog export -o attendance.csv`,
	Run: withEngine(func(cmd *cobra.Command, args []string) {
		records := appEngine.DailyList()

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			if err := export.WriteCSV(os.Stdout, records); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		f, err := os.Create(out)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer f.Close()

		if err := export.WriteCSV(f, records); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📄 Exported %d records to %s\n", len(records), out)
	}),
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write CSV to a file instead of stdout")
}
