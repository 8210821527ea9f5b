// Package report renders a computed payroll result for people: PDF statements,
// CSV exports and terminal summaries.
package report

import (
	"github.com/shopspring/decimal"

	"driverpay/internal/domain/payroll"
	"driverpay/internal/domain/timesheet"
)

// Amount rounds to two decimals for display.
func Amount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

func Money(value float64, currency string) string {
	if currency == "" {
		return Amount(value)
	}
	return Amount(value) + " " + currency
}

// Line is one labelled figure of a statement.
type Line struct {
	Section string `csv:"section"`
	Label   string `csv:"label"`
	Value   string `csv:"value"`
	Unit    string `csv:"unit"`
}

var tierLabels = map[timesheet.Tier]string{
	timesheet.Tier015: "Overtime tier 0.15",
	timesheet.Tier040: "Overtime tier 0.40",
	timesheet.Tier060: "Overtime tier 0.60",
	timesheet.Tier100: "Overtime tier 1.00",
}

// Lines flattens a result in the order every renderer prints it.
func Lines(res payroll.Result) []Line {
	b := res.Breakdown
	lines := []Line{
		{Section: "hours", Label: "Total Hours Worked", Value: Amount(b.TotalHours), Unit: "h"},
		{Section: "hours", Label: "Weekend/Holiday Hours", Value: Amount(b.WeekendHours), Unit: "h"},
		{Section: "hours", Label: "Mid-Week Hours", Value: Amount(b.MidweekHours), Unit: "h"},
		{Section: "hours", Label: "Extra Hours (HS)", Value: Amount(b.TotalExtraHours), Unit: "h"},
		{Section: "salary", Label: "Total Salary", Value: Amount(b.TotalSalary), Unit: res.Currency},
		{Section: "salary", Label: "Regular Salary", Value: Amount(b.RegularSalary), Unit: res.Currency},
		{Section: "salary", Label: "Overtime Salary", Value: Amount(b.OvertimeSalary), Unit: res.Currency},
	}
	for _, tier := range timesheet.PaidTiers {
		lines = append(lines, Line{Section: "overtime", Label: tierLabels[tier], Value: Amount(b.TierSalary(tier)), Unit: res.Currency})
	}
	lines = append(lines,
		Line{Section: "final", Label: "Minhala Salary (Weekend/Holiday + Relevant Extra Hours)", Value: Amount(b.WeekendFinalSalary), Unit: res.Currency},
		Line{Section: "final", Label: "Batmach Salary (Mid-Week + Relevant Extra Hours)", Value: Amount(b.MidweekFinalSalary), Unit: res.Currency},
	)
	return lines
}
