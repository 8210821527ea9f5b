package payroll

const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatCSV  = "csv"
	FormatText = "text"

	DefaultCurrency = "CFA"
)

type DivisionKind string

const (
	NoHoursRecorded DivisionKind = "no_hours_recorded"
	NoOvertimeHours DivisionKind = "no_overtime_hours"
	NoRegularHours  DivisionKind = "no_regular_hours"
)

// DefaultDrivers is the roster used when none is configured.
var DefaultDrivers = []string{"MOUSSA", "PATHE"}
