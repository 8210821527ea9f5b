package timesheet

const (
	ColumnDay     = "JOUR"
	ColumnRemarks = "REMARQUES"
	ColumnHours   = "HEURES NOMBRE"

	hoursTokenA = "HEURES"
	hoursTokenB = "NOMBRE"

	totalMarker = "TOTAL"

	DaySaturday = "SAMEDI"
	DaySunday   = "DIMANCHE"
)

// Tier identifies one overtime column of the timesheet.
type Tier string

const (
	TierBase Tier = "HS"
	Tier015  Tier = "0.15"
	Tier040  Tier = "0.40"
	Tier060  Tier = "0.60"
	Tier100  Tier = "1.00"
)

// AllTiers lists every overtime column in sheet order.
var AllTiers = []Tier{TierBase, Tier015, Tier040, Tier060, Tier100}

// PaidTiers are the tariff tiers the overtime pool is spread across.
var PaidTiers = []Tier{Tier015, Tier040, Tier060, Tier100}

var tierRates = map[Tier]float64{
	TierBase: 0,
	Tier015:  0.15,
	Tier040:  0.40,
	Tier060:  0.60,
	Tier100:  1.00,
}

func (t Tier) Rate() float64 {
	return tierRates[t]
}

func (t Tier) Valid() bool {
	_, ok := tierRates[t]
	return ok
}

type DayCategory int

const (
	MidWeek DayCategory = iota
	WeekendOrHoliday
)

func (c DayCategory) String() string {
	switch c {
	case WeekendOrHoliday:
		return "Weekend/Holiday"
	default:
		return "Mid-Week"
	}
}

func (c DayCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
