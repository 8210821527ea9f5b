package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"driverpay/internal/domain/payroll"
)

var sectionTitles = map[string]string{
	"hours":    "Work Hours Breakdown",
	"salary":   "Salary Breakdown",
	"overtime": "Overtime Tariff Distribution",
	"final":    "Final Salaries",
}

// PDF writes a one-page A4 statement for the driver.
func PDF(w io.Writer, res payroll.Result, generated time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Salary statement "+res.Driver, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Statement")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	if res.Driver != "" {
		pdf.Cell(0, 8, tr(fmt.Sprintf("Driver: %s", res.Driver)))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", generated.Format("2006-01-02 15:04")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Timesheet rows: %d (excluded hour cells: %d)", res.Rows, res.SkippedRows))
	pdf.Ln(10)

	section := ""
	for _, line := range Lines(res) {
		if line.Section != section {
			section = line.Section
			pdf.Ln(3)
			pdf.SetFont("Helvetica", "B", 13)
			pdf.Cell(0, 8, sectionTitles[section])
			pdf.Ln(9)
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.CellFormat(130, 7, tr(line.Label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, line.Value+" "+line.Unit, "B", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
