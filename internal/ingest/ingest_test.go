package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverpay/internal/domain/timesheet"
	"driverpay/internal/testutil"
)

func TestReadXLSXSelectsSheetAndHeaderRow(t *testing.T) {
	data := testutil.Workbook(t, map[string][]testutil.Day{
		"MOUSSA": testutil.Week(),
		"PATHE":  {{Day: "SAMEDI", Hours: "6"}},
	}, "MOUSSA", "PATHE")

	table, err := Read(bytes.NewReader(data), "mars.xlsx", Options{Sheet: "PATHE"})
	require.NoError(t, err)
	assert.Equal(t, 3, table.FirstLine)
	assert.Equal(t, "NOMBRE HEURES", table.Columns[4])
	assert.Equal(t, "HEURES DEBUT", table.Columns[2])
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "SAMEDI", table.Rows[0][1])
	assert.Equal(t, "6", table.Rows[0][4])

	ts, err := timesheet.Normalize(table)
	require.NoError(t, err)
	total, weekend, _ := ts.Hours()
	assert.Equal(t, 6.0, total)
	assert.Equal(t, 6.0, weekend)
}

func TestReadXLSXDefaultsToFirstSheet(t *testing.T) {
	data := testutil.Workbook(t, map[string][]testutil.Day{"MOUSSA": testutil.Week()}, "MOUSSA")

	table, err := Read(bytes.NewReader(data), "mars.XLSX", Options{})
	require.NoError(t, err)
	assert.Len(t, table.Rows, 5)
}

func TestReadXLSXSheetNotFound(t *testing.T) {
	data := testutil.Workbook(t, map[string][]testutil.Day{"MOUSSA": testutil.Week()}, "MOUSSA")

	_, err := Read(bytes.NewReader(data), "mars.xlsx", Options{Sheet: "IBRAHIMA"})
	assert.ErrorIs(t, err, ErrSheetNotFound)

	table, err := Read(bytes.NewReader(data), "mars.xlsx", Options{Sheet: "moussa"})
	require.NoError(t, err)
	assert.NotEmpty(t, table.Rows)
}

func TestSheets(t *testing.T) {
	data := testutil.Workbook(t, map[string][]testutil.Day{
		"MOUSSA": testutil.Week(),
		"PATHE":  testutil.Week(),
	}, "MOUSSA", "PATHE")

	names, err := Sheets(bytes.NewReader(data), "mars.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"MOUSSA", "PATHE"}, names)

	names, err = Sheets(bytes.NewReader([]byte("a,b\n")), "mars.csv")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestReadDelimitedHeaderOnFourthRow(t *testing.T) {
	days := append(testutil.Week(), testutil.Day{Day: "DIMANCHE", Hours: "4", HS: "1", T100: "1"})

	for _, sep := range []string{",", ";"} {
		table, err := Read(bytes.NewReader(testutil.CSV(days, sep)), "mars.csv", Options{})
		require.NoError(t, err, sep)
		assert.Equal(t, "NOMBRE HEURES", table.Columns[4], sep)
		// The quoted header spans lines 4 to 7; continuation lines stay as blank rows.
		assert.Equal(t, 5, table.FirstLine, sep)
		require.Len(t, table.Rows, 9, sep)

		ts, err := timesheet.Normalize(table)
		require.NoError(t, err, sep)
		assert.Equal(t, 8, ts.Rows[0].Line, sep)
		total, weekend, midweek := ts.Hours()
		assert.Equal(t, 44.0, total, sep)
		assert.Equal(t, 4.0, weekend, sep)
		assert.Equal(t, 40.0, midweek, sep)
		assert.Equal(t, 1.0, ts.TierSum(timesheet.Tier100), sep)
	}
}

func TestReadDelimitedCountsBlankLines(t *testing.T) {
	csv := "SOCIETE TRANSPORT\n\nMOIS,MARS\nJOUR,REMARQUES,NOMBRE HEURES,HS,0.15,0.4,0.6,1\n\nLUNDI,,8,,,,,\nSAMEDI,,4,1,,,,1\n"
	table, err := Read(bytes.NewReader([]byte(csv)), "mars.csv", Options{})
	require.NoError(t, err)
	assert.Equal(t, "JOUR", table.Columns[0])
	assert.Equal(t, 5, table.FirstLine)

	ts, err := timesheet.Normalize(table)
	require.NoError(t, err)
	require.Len(t, ts.Rows, 2)
	assert.Equal(t, 6, ts.Rows[0].Line)
	assert.Equal(t, 7, ts.Rows[1].Line)
}

func TestReadDelimitedTab(t *testing.T) {
	table, err := Read(bytes.NewReader(testutil.CSV(testutil.Week(), "\t")), "mars.tsv", Options{})
	require.NoError(t, err)
	ts, err := timesheet.Normalize(table)
	require.NoError(t, err)
	assert.Len(t, ts.Rows, 5)
}

func TestReadNoHeader(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("a\nb\n")), "short.csv", Options{})
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadUnsupported(t *testing.T) {
	_, err := Read(bytes.NewReader(nil), "timesheet.pdf", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.False(t, Supported("timesheet.ods"))
	assert.True(t, Supported("timesheet.xls"))
}

func TestReadCorruptWorkbook(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not a zip")), "mars.xlsx", Options{})
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "NOMBRE D'HEURES", NormalizeHeader("\ufeff NOMBRE\r\nD'HEURES  "))
	assert.Equal(t, "0.15", NormalizeHeader("0.15"))
}
