package timesheet

import (
	"math"
	"strings"
)

// Schema maps each logical column to its index in Table.Columns.
type Schema struct {
	Day     int
	Remarks int
	Hours   int
	Tiers   map[Tier]int
}

// NormalizeHeader collapses embedded line breaks and repeated spaces, trims and upper-cases.
func NormalizeHeader(name string) string {
	name = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ").Replace(name)
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

func ResolveSchema(columns []string) (Schema, error) {
	schema := Schema{Day: -1, Remarks: -1, Hours: -1, Tiers: make(map[Tier]int, len(AllTiers))}

	for i, raw := range columns {
		name := NormalizeHeader(raw)
		switch {
		case name == "":
			continue
		case name == ColumnDay:
			if schema.Day < 0 {
				schema.Day = i
			}
		case name == ColumnRemarks:
			if schema.Remarks < 0 {
				schema.Remarks = i
			}
		case strings.Contains(name, hoursTokenA) && strings.Contains(name, hoursTokenB):
			if schema.Hours < 0 {
				schema.Hours = i
			}
		default:
			if tier, ok := matchTier(name); ok {
				if _, seen := schema.Tiers[tier]; !seen {
					schema.Tiers[tier] = i
				}
			}
		}
	}

	var missing []string
	if schema.Day < 0 {
		missing = append(missing, ColumnDay)
	}
	if schema.Remarks < 0 {
		missing = append(missing, ColumnRemarks)
	}
	if schema.Hours < 0 {
		missing = append(missing, ColumnHours)
	}
	for _, tier := range AllTiers {
		if _, ok := schema.Tiers[tier]; !ok {
			missing = append(missing, string(tier))
		}
	}
	if len(missing) > 0 {
		return Schema{}, &SchemaError{Missing: missing}
	}
	return schema, nil
}

func matchTier(name string) (Tier, bool) {
	if name == string(TierBase) {
		return TierBase, true
	}
	value, ok := ParseNumber(name)
	if !ok {
		return "", false
	}
	for _, tier := range PaidTiers {
		if math.Abs(value-tier.Rate()) < 1e-9 {
			return tier, true
		}
	}
	return "", false
}
