package payroll

import (
	"math"

	"driverpay/internal/domain/timesheet"
)

// Apportion splits totalSalary between the mid-week and weekend/holiday buckets.
// The evaluation order below is fixed so results are reproducible to the last bit.
func Apportion(ts timesheet.Normalized, totalSalary float64, opts Options) (Breakdown, error) {
	if math.IsNaN(totalSalary) || math.IsInf(totalSalary, 0) || totalSalary < 0 {
		return Breakdown{}, ErrInvalidSalary
	}

	totalHours, weekendHours, midweekHours := ts.Hours()
	extraHours := ts.TierSum(timesheet.TierBase)

	if totalHours+extraHours == 0 {
		return Breakdown{}, &DivisionByZeroError{Kind: NoHoursRecorded}
	}
	overtimeSalary := (extraHours / (totalHours + extraHours)) * totalSalary
	regularSalary := totalSalary - overtimeSalary

	tiers := make(map[timesheet.Tier]float64, len(timesheet.PaidTiers))
	for _, tier := range timesheet.PaidTiers {
		if extraHours == 0 {
			if opts.StrictOvertime {
				return Breakdown{}, &DivisionByZeroError{Kind: NoOvertimeHours}
			}
			tiers[tier] = 0
			continue
		}
		tiers[tier] = overtimeSalary * (ts.TierSum(tier) / extraHours)
	}

	if totalHours == 0 {
		return Breakdown{}, &DivisionByZeroError{Kind: NoRegularHours}
	}
	midweekFinal := (midweekHours/totalHours)*regularSalary + tiers[timesheet.Tier015] + tiers[timesheet.Tier040]
	weekendFinal := (weekendHours/totalHours)*regularSalary + tiers[timesheet.Tier060] + tiers[timesheet.Tier100]

	b := Breakdown{
		TotalHours:         totalHours,
		WeekendHours:       weekendHours,
		MidweekHours:       midweekHours,
		TotalExtraHours:    extraHours,
		TotalSalary:        totalSalary,
		OvertimeSalary:     overtimeSalary,
		RegularSalary:      regularSalary,
		TierSalaries:       tiers,
		MidweekFinalSalary: midweekFinal,
		WeekendFinalSalary: weekendFinal,
	}
	if !b.finite() {
		return Breakdown{}, ErrNonFinite
	}
	return b, nil
}

// finite reports whether every figure is a real number. Extreme tier ratios
// (a near-zero HS sum) can overflow even though no divisor is exactly zero.
func (b Breakdown) finite() bool {
	figures := []float64{
		b.TotalHours, b.WeekendHours, b.MidweekHours, b.TotalExtraHours,
		b.OvertimeSalary, b.RegularSalary, b.MidweekFinalSalary, b.WeekendFinalSalary,
	}
	for _, value := range b.TierSalaries {
		figures = append(figures, value)
	}
	for _, value := range figures {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}
	return true
}
