package timesheet

import (
	"errors"
	"strings"
)

var ErrEmptyData = errors.New("timesheet has no data rows")

// SchemaError reports logical columns that could not be located in the header row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "timesheet is missing required columns: " + strings.Join(e.Missing, ", ")
}
