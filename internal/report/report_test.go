package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverpay/internal/domain/payroll"
	"driverpay/internal/domain/timesheet"
)

func sampleResult() payroll.Result {
	return payroll.Result{
		Driver:   "MOUSSA",
		Currency: "CFA",
		Rows:     22,
		Breakdown: payroll.Breakdown{
			TotalHours:      176,
			WeekendHours:    16,
			MidweekHours:    160,
			TotalExtraHours: 12,
			TotalSalary:     150000,
			OvertimeSalary:  9574.468085106383,
			RegularSalary:   140425.53191489362,
			TierSalaries: map[timesheet.Tier]float64{
				timesheet.Tier015: 3191.489361702128,
				timesheet.Tier040: 3191.489361702128,
				timesheet.Tier060: 1595.744680851064,
				timesheet.Tier100: 1595.744680851064,
			},
			MidweekFinalSalary: 134041.57,
			WeekendFinalSalary: 15958.43,
		},
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "9574.47", Amount(9574.468085106383))
	assert.Equal(t, "0.00", Amount(0))
	assert.Equal(t, "5000.00 CFA", Money(5000, "CFA"))
	assert.Equal(t, "12.50", Money(12.5, ""))
}

func TestLinesOrder(t *testing.T) {
	lines := Lines(sampleResult())
	require.Len(t, lines, 13)
	assert.Equal(t, "Total Hours Worked", lines[0].Label)
	assert.Equal(t, "176.00", lines[0].Value)
	assert.Equal(t, "Overtime tier 0.15", lines[7].Label)
	assert.Equal(t, "3191.49", lines[7].Value)
	assert.Equal(t, "15958.43", lines[11].Value)
	assert.Equal(t, "134041.57", lines[12].Value)
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, sampleResult()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 14)
	assert.Equal(t, []string{"section", "label", "value", "unit"}, records[0])
	assert.Equal(t, []string{"salary", "Total Salary", "150000.00", "CFA"}, records[5])
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, sampleResult(), time.Date(2026, 3, 31, 18, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestText(t *testing.T) {
	out := Text(sampleResult())
	assert.Contains(t, out, "Work Hours Breakdown")
	assert.Contains(t, out, "Salary Breakdown")
	assert.Contains(t, out, "MOUSSA")
	assert.Contains(t, out, "150000.00 CFA")
}
