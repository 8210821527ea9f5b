package timesheet

// Table is a parsed sheet: normalized header names and the data rows below them.
type Table struct {
	Columns []string
	Rows    [][]string
	// FirstLine is the physical line number of Rows[0] in the source file.
	FirstLine int
}

type Row struct {
	Line     int
	Day      string
	Remarks  string
	Hours    float64
	HasHours bool
	Overtime map[Tier]float64
	Category DayCategory
}

func (r Row) HasOvertime() bool {
	return len(r.Overtime) > 0
}

type Normalized struct {
	Schema   Schema
	Rows     []Row
	Overtime []Row
	Skipped  int
}

// Hours sums worked hours over every row with a valid hours value.
func (n Normalized) Hours() (total, weekend, midweek float64) {
	for _, row := range n.Rows {
		if !row.HasHours {
			continue
		}
		total += row.Hours
		switch row.Category {
		case WeekendOrHoliday:
			weekend += row.Hours
		default:
			midweek += row.Hours
		}
	}
	return total, weekend, midweek
}

// Counted reports how many rows contribute worked hours.
func (n Normalized) Counted() int {
	count := 0
	for _, row := range n.Rows {
		if row.HasHours {
			count++
		}
	}
	return count
}

func (n Normalized) TierSum(tier Tier) float64 {
	sum := 0.0
	for _, row := range n.Overtime {
		if value, ok := row.Overtime[tier]; ok {
			sum += value
		}
	}
	return sum
}
