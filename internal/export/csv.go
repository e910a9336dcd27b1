package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"punchlog/internal/dateutil"
	"punchlog/internal/models"
)

// TimestampLayout is how check-in and checkout times appear in exports.
const TimestampLayout = "2006-01-02 15:04:05"

// WriteCSV writes records in the interchange shape: Date, Check In,
// Check Out (empty while a session is open) and Total Hours as decimal
// hours to two places, or 0 when no total exists yet.
func WriteCSV(w io.Writer, records []models.AttendanceRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Check In", "Check Out", "Total Hours"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		checkOut := ""
		if r.CheckOut != nil {
			checkOut = r.CheckOut.Format(TimestampLayout)
		}
		totalHours := "0"
		if r.TotalMs != nil {
			totalHours = strconv.FormatFloat(dateutil.MsToHours(*r.TotalMs), 'f', 2, 64)
		}
		row := []string{r.Date, r.CheckIn.Format(TimestampLayout), checkOut, totalHours}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.Date, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
