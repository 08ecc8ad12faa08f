package scheduler

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected int
	}{
		{"January", 2026, time.January, 31},
		{"April", 2026, time.April, 30},
		{"February common year", 2026, time.February, 28},
		{"February leap year", 2028, time.February, 29},
		{"February century non-leap", 2100, time.February, 28},
		{"February 400-year leap", 2000, time.February, 29},
		{"December", 2026, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestMonthDates_OrderedAndFormatted(t *testing.T) {
	dates := slices.Collect(MonthDates(2026, time.March))

	require.Len(t, dates, 31)
	assert.Equal(t, "2026-03-01", dates[0])
	assert.Equal(t, "2026-03-09", dates[8])
	assert.Equal(t, "2026-03-31", dates[30])
	assert.True(t, slices.IsSorted(dates))
}

func TestMonthDates_Restartable(t *testing.T) {
	seq := MonthDates(2026, time.February)

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Len(t, first, 28)
	assert.Equal(t, first, second)
}

func TestMonthDates_StopsEarly(t *testing.T) {
	var seen []string
	for date := range MonthDates(2026, time.March) {
		seen = append(seen, date)
		if len(seen) == 3 {
			break
		}
	}

	assert.Equal(t, []string{"2026-03-01", "2026-03-02", "2026-03-03"}, seen)
}
