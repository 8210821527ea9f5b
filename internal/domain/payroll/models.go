package payroll

import (
	"driverpay/internal/domain/timesheet"
)

type Options struct {
	// StrictOvertime fails the computation when no HS hours were recorded
	// instead of paying zero on every overtime tier.
	StrictOvertime bool
}

type Breakdown struct {
	TotalHours         float64                    `json:"totalHours"`
	WeekendHours       float64                    `json:"weekendHours"`
	MidweekHours       float64                    `json:"midweekHours"`
	TotalExtraHours    float64                    `json:"totalExtraHours"`
	TotalSalary        float64                    `json:"totalSalary"`
	OvertimeSalary     float64                    `json:"overtimeSalary"`
	RegularSalary      float64                    `json:"regularSalary"`
	TierSalaries       map[timesheet.Tier]float64 `json:"tierSalaries"`
	MidweekFinalSalary float64                    `json:"midweekFinalSalary"`
	WeekendFinalSalary float64                    `json:"weekendFinalSalary"`
}

func (b Breakdown) TierSalary(tier timesheet.Tier) float64 {
	return b.TierSalaries[tier]
}

type Result struct {
	Driver   string `json:"driver"`
	Currency string `json:"currency"`
	// Rows counts the rows whose hours were summed. Rows with a blank or
	// unreadable hours cell are left out; SkippedRows counts the unreadable ones.
	Rows        int       `json:"rows"`
	SkippedRows int       `json:"skippedRows"`
	Breakdown   Breakdown `json:"breakdown"`
}

