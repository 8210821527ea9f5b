package timesheet

import (
	"strings"
)

// Normalize resolves the schema once and turns every data row of the table into
// a typed Row. Summary rows labelled TOTAL and fully blank rows are dropped.
// Negative hours or tier cells count as missing.
func Normalize(table Table) (Normalized, error) {
	schema, err := ResolveSchema(table.Columns)
	if err != nil {
		return Normalized{}, err
	}

	firstLine := table.FirstLine
	if firstLine <= 0 {
		firstLine = 1
	}

	out := Normalized{Schema: schema, Rows: make([]Row, 0, len(table.Rows))}
	for i, cells := range table.Rows {
		if blank(cells) {
			continue
		}
		day := strings.TrimSpace(cell(cells, schema.Day))
		if strings.Contains(strings.ToUpper(day), totalMarker) {
			continue
		}

		row := Row{
			Line:    firstLine + i,
			Day:     day,
			Remarks: strings.TrimSpace(cell(cells, schema.Remarks)),
		}
		if hours, ok := ParseNumber(cell(cells, schema.Hours)); ok && hours >= 0 {
			row.Hours = hours
			row.HasHours = true
		} else if strings.TrimSpace(cell(cells, schema.Hours)) != "" {
			out.Skipped++
		}
		row.Category = Classify(row.Day, row.Remarks)

		for tier, idx := range schema.Tiers {
			value, ok := ParseNumber(cell(cells, idx))
			if !ok || value < 0 {
				continue
			}
			if row.Overtime == nil {
				row.Overtime = make(map[Tier]float64, len(AllTiers))
			}
			row.Overtime[tier] = value
		}

		out.Rows = append(out.Rows, row)
		if row.HasOvertime() {
			out.Overtime = append(out.Overtime, row)
		}
	}

	if len(out.Rows) == 0 {
		return Normalized{}, ErrEmptyData
	}
	return out, nil
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func blank(cells []string) bool {
	for _, value := range cells {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
