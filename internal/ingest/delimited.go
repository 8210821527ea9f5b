package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

func readDelimited(data []byte, filename string) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data, filename)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidFile, filepath.Base(filename), err)
		}
		// Blank lines and the continuation lines of quoted multi-line cells
		// still count as rows so header offsets stay physical.
		line, _ := reader.FieldPos(0)
		for len(rows) < line-1 {
			rows = append(rows, nil)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// sniffDelimiter picks tab for .tsv/.txt and otherwise whichever of ';' and ','
// appears more often in the first lines.
func sniffDelimiter(data []byte, filename string) rune {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tsv", ".txt":
		if bytes.ContainsRune(data, '\t') {
			return '\t'
		}
	}
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	if bytes.Count(sample, []byte(";")) > bytes.Count(sample, []byte(",")) {
		return ';'
	}
	return ','
}
