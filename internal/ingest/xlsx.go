package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

func readXLSX(data []byte, sheet string) ([][]string, error) {
	file, err := excelize.OpenReader(newReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", ErrInvalidFile, err)
	}
	defer func() { _ = file.Close() }()

	name, err := matchSheet(file.GetSheetList(), sheet)
	if err != nil {
		return nil, err
	}
	rows, err := file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrInvalidFile, name, err)
	}
	return rows, nil
}

func xlsxSheets(data []byte) ([]string, error) {
	file, err := excelize.OpenReader(newReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", ErrInvalidFile, err)
	}
	defer func() { _ = file.Close() }()
	return file.GetSheetList(), nil
}
