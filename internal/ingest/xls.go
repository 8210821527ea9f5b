package ingest

import (
	"fmt"

	"github.com/extrame/xls"
)

func openXLS(data []byte) (*xls.WorkBook, error) {
	workbook, err := xls.OpenReader(newReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", ErrInvalidFile, err)
	}
	return workbook, nil
}

func readXLS(data []byte, sheet string) ([][]string, error) {
	workbook, err := openXLS(data)
	if err != nil {
		return nil, err
	}
	names := sheetNames(workbook)
	name, err := matchSheet(names, sheet)
	if err != nil {
		return nil, err
	}
	for i, candidate := range names {
		if candidate != name {
			continue
		}
		ws := workbook.GetSheet(i)
		if ws == nil {
			break
		}
		rows := make([][]string, 0, int(ws.MaxRow)+1)
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := ws.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, 0, row.LastCol()+1)
			for c := 0; c <= row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			rows = append(rows, cells)
		}
		return rows, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
}

func xlsSheets(data []byte) ([]string, error) {
	workbook, err := openXLS(data)
	if err != nil {
		return nil, err
	}
	return sheetNames(workbook), nil
}

func sheetNames(workbook *xls.WorkBook) []string {
	names := make([]string, 0, workbook.NumSheets())
	for i := 0; i < workbook.NumSheets(); i++ {
		if ws := workbook.GetSheet(i); ws != nil {
			names = append(names, ws.Name)
		}
	}
	return names
}
