package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchlog/internal/models"
)

func TestWriteCSV(t *testing.T) {
	checkIn := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.Local)
	checkOut := time.Date(2024, time.March, 4, 18, 30, 0, 0, time.Local)
	total := int64(9*3600*1000 + 30*60*1000)

	records := []models.AttendanceRecord{
		{Date: "2024-03-04", CheckIn: checkIn, CheckOut: &checkOut, TotalMs: &total},
		{Date: "2024-03-05", CheckIn: checkIn.AddDate(0, 0, 1)}, // still open
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Check In", "Check Out", "Total Hours"}, rows[0])
	assert.Equal(t, []string{"2024-03-04", "2024-03-04 09:00:00", "2024-03-04 18:30:00", "9.50"}, rows[1])
	assert.Equal(t, "2024-03-05", rows[2][0])
	assert.Empty(t, rows[2][2], "open session has no checkout")
	assert.Equal(t, "0", rows[2][3], "open session exports a zero total")
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
