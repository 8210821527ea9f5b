// Package testutil builds timesheet fixtures shaped like the monthly driver workbooks.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Header is the header row of a driver sheet, including the line breaks found
// in real exports.
var Header = []any{"DATE", "JOUR", "HEURES\nDEBUT", "HEURES\nFIN", " NOMBRE\nHEURES ", "REMARQUES", "HS", "0.15", "0.4", "0.6", "1"}

// Day is one timesheet line. Empty strings are written as blank cells.
type Day struct {
	Date    string
	Day     string
	Hours   string
	Remarks string
	HS      string
	T015    string
	T040    string
	T060    string
	T100    string
}

func (d Day) cells() []any {
	cells := []any{d.Date, d.Day, "", "", d.Hours, d.Remarks, d.HS, d.T015, d.T040, d.T060, d.T100}
	for i, cell := range cells {
		if s, ok := cell.(string); ok && s == "" {
			cells[i] = nil
		}
	}
	return cells
}

// Week returns five mid-week days of eight hours without overtime.
func Week() []Day {
	names := []string{"LUNDI", "MARDI", "MERCREDI", "JEUDI", "VENDREDI"}
	days := make([]Day, 0, len(names))
	for i, name := range names {
		days = append(days, Day{Date: fmt.Sprintf("0%d/03", i+1), Day: name, Hours: "8"})
	}
	return days
}

// Workbook writes an xlsx with one sheet per driver. The first physical row holds
// a title, the header sits on row 2 and data starts on row 3.
func Workbook(t *testing.T, sheets map[string][]Day, order ...string) []byte {
	t.Helper()

	if len(order) == 0 {
		for name := range sheets {
			order = append(order, name)
		}
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		if err := f.SetCellValue(name, "A1", "FEUILLE DE TEMPS "+name); err != nil {
			t.Fatalf("title: %v", err)
		}
		header := Header
		if err := f.SetSheetRow(name, "A2", &header); err != nil {
			t.Fatalf("header: %v", err)
		}
		for j, day := range sheets[name] {
			cells := day.cells()
			if err := f.SetSheetRow(name, fmt.Sprintf("A%d", j+3), &cells); err != nil {
				t.Fatalf("row %d: %v", j, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// CSV renders the same layout as a delimited export: three preamble lines, the
// header on line 4, then the data.
func CSV(days []Day, sep string) []byte {
	var b strings.Builder
	b.WriteString("SOCIETE TRANSPORT\n")
	b.WriteString("CHAUFFEUR" + sep + "MOUSSA\n")
	b.WriteString("MOIS" + sep + "MARS\n")
	header := make([]string, len(Header))
	for i, h := range Header {
		header[i] = `"` + h.(string) + `"`
	}
	b.WriteString(strings.Join(header, sep) + "\n")
	for _, day := range days {
		b.WriteString(strings.Join([]string{day.Date, day.Day, "", "", day.Hours, day.Remarks, day.HS, day.T015, day.T040, day.T060, day.T100}, sep) + "\n")
	}
	return []byte(b.String())
}
