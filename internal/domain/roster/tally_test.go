package roster

import (
	"testing"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2/2024", MonthKey(date(2024, 2, 29)))
	assert.Equal(t, "12/2024", MonthKey(date(2024, 12, 1)))
	assert.Equal(t, "1/2025", MonthKey(date(2025, 1, 31)))
}

func TestParseMonthKey(t *testing.T) {
	month, year, err := ParseMonthKey("11/2024")
	require.NoError(t, err)
	assert.Equal(t, 11, int(month))
	assert.Equal(t, 2024, year)

	for _, key := range []string{"", "2024", "13/2024", "x/2024", "2/y"} {
		_, _, err := ParseMonthKey(key)
		assert.Error(t, err, key)
	}
}

func TestNewMonthlyTally(t *testing.T) {
	events := []DutyEvent{
		{Professional: "A", Date: date(2024, 2, 1), Role: domain.Internal},
		{Professional: "B", Date: date(2024, 2, 1), Role: domain.External},
		{Professional: "A", Date: date(2024, 2, 4), Role: domain.Internal},
		{Professional: "A", Date: date(2024, 3, 1), Role: domain.External},
	}

	got := NewMonthlyTally(events)

	assert.Equal(t, MonthlyTally{
		"A": {"2/2024": 2, "3/2024": 1},
		"B": {"2/2024": 1},
	}, got)
}

func TestMonthlyTally_Get(t *testing.T) {
	tally := MonthlyTally{"A": {"2/2024": 2}}

	assert.Equal(t, 2, tally.Get("A", "2/2024"))
	assert.Equal(t, 0, tally.Get("A", "3/2024"), "missing month is zero")
	assert.Equal(t, 0, tally.Get("Z", "2/2024"), "missing professional is zero")
	_, exists := tally["Z"]
	assert.False(t, exists, "Get must not create entries")
}

func TestMonthlyTally_Add(t *testing.T) {
	tally := make(MonthlyTally)
	tally.Add("A", "2/2024")
	tally.Add("A", "2/2024")
	tally.Add("A", "10/2024")

	assert.Equal(t, 2, tally.Get("A", "2/2024"))
	assert.Equal(t, 1, tally.Get("A", "10/2024"))
	assert.Equal(t, 3, tally.Total("A"))
	assert.Equal(t, 0, tally.Total("B"))
}

func TestMonthlyTally_Months(t *testing.T) {
	tally := MonthlyTally{
		"A": {"10/2024": 1, "2/2024": 1},
		"B": {"1/2025": 1, "2/2024": 3},
	}

	assert.Equal(t, []string{"2/2024", "10/2024", "1/2025"}, tally.Months())
	assert.Equal(t, []string{"A", "B"}, tally.Professionals())
}

func TestMonthlyTally_Empty(t *testing.T) {
	tally := NewMonthlyTally(nil)

	assert.Empty(t, tally)
	assert.Empty(t, tally.Months())
	assert.Empty(t, tally.Professionals())
}
