// Package ingest reads uploaded timesheets (xlsx, xls, csv/tsv) into a
// timesheet.Table. It only deals with file formats; column meaning is left to
// the timesheet package.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"driverpay/internal/domain/timesheet"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported timesheet format")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrNoHeader          = errors.New("file ends before the header row")
	ErrInvalidFile       = errors.New("file could not be parsed")
)

const (
	DefaultSheetHeaderRow     = 2
	DefaultDelimitedHeaderRow = 4
)

type Options struct {
	Sheet string
	// Header rows are 1-based physical row numbers.
	SheetHeaderRow     int
	DelimitedHeaderRow int
}

func (o Options) sheetHeader() int {
	if o.SheetHeaderRow <= 0 {
		return DefaultSheetHeaderRow
	}
	return o.SheetHeaderRow
}

func (o Options) delimitedHeader() int {
	if o.DelimitedHeaderRow <= 0 {
		return DefaultDelimitedHeaderRow
	}
	return o.DelimitedHeaderRow
}

type format int

const (
	formatUnknown format = iota
	formatXLSX
	formatXLS
	formatDelimited
)

func detect(filename string) format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return formatXLSX
	case ".xls":
		return formatXLS
	case ".csv", ".tsv", ".txt":
		return formatDelimited
	default:
		return formatUnknown
	}
}

// Supported reports whether filename has an extension Read understands.
func Supported(filename string) bool {
	return detect(filename) != formatUnknown
}

// Read loads one sheet of the file into a table. The reader is drained before
// parsing starts.
func Read(r io.Reader, filename string, opts Options) (timesheet.Table, error) {
	kind := detect(filename)
	if kind == formatUnknown {
		return timesheet.Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return timesheet.Table{}, fmt.Errorf("read %s: %w", filename, err)
	}

	var rows [][]string
	header := opts.sheetHeader()
	switch kind {
	case formatXLSX:
		rows, err = readXLSX(data, opts.Sheet)
	case formatXLS:
		rows, err = readXLS(data, opts.Sheet)
	case formatDelimited:
		header = opts.delimitedHeader()
		rows, err = readDelimited(data, filename)
	}
	if err != nil {
		return timesheet.Table{}, err
	}
	return tableFrom(rows, header)
}

// Sheets lists the worksheet names of a workbook. Delimited files have none.
func Sheets(r io.Reader, filename string) ([]string, error) {
	kind := detect(filename)
	if kind == formatUnknown {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	switch kind {
	case formatXLSX:
		return xlsxSheets(data)
	case formatXLS:
		return xlsSheets(data)
	default:
		return []string{}, nil
	}
}

func tableFrom(rows [][]string, header int) (timesheet.Table, error) {
	if len(rows) < header {
		return timesheet.Table{}, fmt.Errorf("%w: header expected on row %d, file has %d rows", ErrNoHeader, header, len(rows))
	}
	columns := make([]string, len(rows[header-1]))
	for i, name := range rows[header-1] {
		columns[i] = NormalizeHeader(name)
	}
	return timesheet.Table{
		Columns:   columns,
		Rows:      rows[header:],
		FirstLine: header + 1,
	}, nil
}

// NormalizeHeader replaces embedded line breaks with spaces and trims the name.
// Case is preserved; matching is case-insensitive downstream.
func NormalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}

func matchSheet(names []string, want string) (string, error) {
	if want == "" {
		if len(names) == 0 {
			return "", fmt.Errorf("%w: workbook has no worksheets", ErrSheetNotFound)
		}
		return names[0], nil
	}
	for _, name := range names {
		if name == want {
			return name, nil
		}
	}
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(want)) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, want)
}

func newReader(data []byte) *bytes.Reader {
	return bytes.NewReader(data)
}
