package timesheet

import (
	"strconv"
	"strings"
)

// Classify puts a day in the weekend/holiday bucket when it falls on Saturday or
// Sunday, or when the row carries any remark. A remark overrides a weekday label.
func Classify(day, remarks string) DayCategory {
	switch strings.ToUpper(strings.TrimSpace(day)) {
	case DaySaturday, DaySunday:
		return WeekendOrHoliday
	}
	if strings.TrimSpace(remarks) != "" {
		return WeekendOrHoliday
	}
	return MidWeek
}

// ParseNumber coerces a cell to a float. Both "." and "," are accepted as the
// decimal separator and grouping spaces are ignored. Empty or non-numeric text,
// NaN and infinities report false.
func ParseNumber(raw string) (float64, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, false
	}
	value = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(value)
	if strings.Count(value, ",") == 1 && !strings.Contains(value, ".") {
		value = strings.Replace(value, ",", ".", 1)
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	if parsed != parsed || parsed > maxCell || parsed < -maxCell {
		return 0, false
	}
	return parsed, true
}

const maxCell = 1e15
