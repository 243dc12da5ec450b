package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"01/02/2024", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"1/2/24", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"15-12-2023", time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-02-01", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"01.02.2024", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"2-Jan-2006", time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"January 2, 2024", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"  01/02/2024  ", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseDateDayFirst(t *testing.T) {
	// 05/03 is the 5th of March, not May 3rd.
	got, err := ParseDate("05/03/2024")
	require.NoError(t, err)
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("not a date")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "February 2024", MonthLabel(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "December 2023", MonthLabel(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "01/02/2024", CleanDateString("  01/02/2024  "))
	assert.Equal(t, "January 2, 2024", CleanDateString("January   2,\t2024"))
}
