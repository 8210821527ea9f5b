package timesheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sheetColumns = []string{"DATE", "JOUR", "HEURES\nNOMBRE ", "REMARQUES", "HS", "0.15", "0.4", "0.6", "1"}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		remarks string
		want    DayCategory
	}{
		{name: "weekday", day: "LUNDI", want: MidWeek},
		{name: "saturday", day: "SAMEDI", want: WeekendOrHoliday},
		{name: "sunday lower case", day: " dimanche ", want: WeekendOrHoliday},
		{name: "remark overrides weekday", day: "LUNDI", remarks: "Holiday", want: WeekendOrHoliday},
		{name: "whitespace remark ignored", day: "MARDI", remarks: "   ", want: MidWeek},
		{name: "empty day", day: "", want: MidWeek},
		{name: "empty day with remark", day: "", remarks: "Tabaski", want: WeekendOrHoliday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.day, tt.remarks))
		})
	}
}

func TestParseNumber(t *testing.T) {
	value, ok := ParseNumber(" 8 ")
	require.True(t, ok)
	assert.Equal(t, 8.0, value)

	value, ok = ParseNumber("7,5")
	require.True(t, ok)
	assert.Equal(t, 7.5, value)

	value, ok = ParseNumber("1 200.5")
	require.True(t, ok)
	assert.Equal(t, 1200.5, value)

	for _, raw := range []string{"", "abc", "NaN", "Inf", "8h"} {
		_, ok := ParseNumber(raw)
		assert.False(t, ok, raw)
	}
}

func TestResolveSchema(t *testing.T) {
	schema, err := ResolveSchema(sheetColumns)
	require.NoError(t, err)
	assert.Equal(t, 1, schema.Day)
	assert.Equal(t, 2, schema.Hours)
	assert.Equal(t, 3, schema.Remarks)
	assert.Equal(t, map[Tier]int{TierBase: 4, Tier015: 5, Tier040: 6, Tier060: 7, Tier100: 8}, schema.Tiers)
}

func TestResolveSchemaAcceptsNumericVariants(t *testing.T) {
	schema, err := ResolveSchema([]string{"jour", "nombre d'heures", "remarques", "hs", "0,15", "0.40", "0.60", "1.00"})
	require.NoError(t, err)
	assert.Equal(t, 1, schema.Hours)
	assert.Equal(t, 7, schema.Tiers[Tier100])
}

func TestResolveSchemaReportsEveryMissingColumn(t *testing.T) {
	_, err := ResolveSchema([]string{"JOUR", "HEURES", "HS", "0.15"})
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{ColumnRemarks, ColumnHours, "0.40", "0.60", "1.00"}, schemaErr.Missing)
	assert.Contains(t, err.Error(), "REMARQUES")
}

func TestNormalize(t *testing.T) {
	table := Table{
		Columns:   sheetColumns,
		FirstLine: 3,
		Rows: [][]string{
			{"01/03", "LUNDI", "8", "", "2", "2", "", "", ""},
			{"02/03", "MARDI", "abc", "", "", "", "", "", ""},
			{"", "", "", "", "", "", "", "", ""},
			{"06/03", "SAMEDI", "6", "", "1", "", "", "1", ""},
			{"07/03", "LUNDI", "4", "Férié", "", "", "", "", ""},
			{"", "TOTAL SEMAINE 1", "18", "", "3", "2", "", "1", ""},
			{"08/03", "MARDI", "-3", "", "", "", "", "", ""},
		},
	}

	ts, err := Normalize(table)
	require.NoError(t, err)
	require.Len(t, ts.Rows, 5)
	assert.Equal(t, 2, ts.Skipped)
	assert.Equal(t, 3, ts.Counted())

	assert.Equal(t, 3, ts.Rows[0].Line)
	assert.Equal(t, MidWeek, ts.Rows[0].Category)
	assert.False(t, ts.Rows[1].HasHours)
	assert.Equal(t, WeekendOrHoliday, ts.Rows[2].Category)
	assert.Equal(t, WeekendOrHoliday, ts.Rows[3].Category)
	assert.False(t, ts.Rows[4].HasHours)

	total, weekend, midweek := ts.Hours()
	assert.InDelta(t, 18.0, total, 1e-9)
	assert.InDelta(t, 10.0, weekend, 1e-9)
	assert.InDelta(t, 8.0, midweek, 1e-9)
	assert.InDelta(t, total, weekend+midweek, 1e-6)

	require.Len(t, ts.Overtime, 2)
	assert.InDelta(t, 3.0, ts.TierSum(TierBase), 1e-9)
	assert.InDelta(t, 2.0, ts.TierSum(Tier015), 1e-9)
	assert.InDelta(t, 1.0, ts.TierSum(Tier060), 1e-9)
	assert.Zero(t, ts.TierSum(Tier100))
}

func TestNormalizeTreatsNegativeTierCellsAsMissing(t *testing.T) {
	ts, err := Normalize(Table{Columns: sheetColumns, Rows: [][]string{
		{"", "LUNDI", "8", "", "-2", "-1", "", "", ""},
		{"", "MARDI", "8", "", "1", "", "", "", "1"},
	}})
	require.NoError(t, err)
	require.Len(t, ts.Overtime, 1)
	assert.Equal(t, "MARDI", ts.Overtime[0].Day)
	assert.Equal(t, 1.0, ts.TierSum(TierBase))
	assert.Zero(t, ts.TierSum(Tier015))
	assert.Equal(t, 2, ts.Counted())
}

func TestNormalizeDropsTotalRowsCaseInsensitive(t *testing.T) {
	table := Table{
		Columns: sheetColumns,
		Rows: [][]string{
			{"", "LUNDI", "8", "", "", "", "", "", ""},
			{"", "Total", "100", "", "", "", "", "", ""},
			{"", "sous-total", "100", "", "", "", "", "", ""},
		},
	}
	ts, err := Normalize(table)
	require.NoError(t, err)
	total, _, _ := ts.Hours()
	assert.Equal(t, 8.0, total)
}

func TestNormalizeRaggedRows(t *testing.T) {
	ts, err := Normalize(Table{Columns: sheetColumns, Rows: [][]string{{"", "MERCREDI", "7.5"}}})
	require.NoError(t, err)
	require.Len(t, ts.Rows, 1)
	assert.True(t, ts.Rows[0].HasHours)
	assert.Empty(t, ts.Overtime)
}

func TestNormalizeEmpty(t *testing.T) {
	_, err := Normalize(Table{Columns: sheetColumns, Rows: [][]string{{"", "TOTAL", "10"}}})
	assert.ErrorIs(t, err, ErrEmptyData)

	_, err = Normalize(Table{Columns: sheetColumns})
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestNormalizeSchemaError(t *testing.T) {
	_, err := Normalize(Table{Columns: []string{"JOUR"}, Rows: [][]string{{"LUNDI"}}})
	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestTierRate(t *testing.T) {
	assert.Equal(t, 0.4, Tier040.Rate())
	assert.True(t, Tier100.Valid())
	assert.False(t, Tier("2.00").Valid())
	assert.Equal(t, "Weekend/Holiday", WeekendOrHoliday.String())
}
