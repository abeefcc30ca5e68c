package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"05.03.2025", "2025-03-05", true},
		{"31.12.2024", "2024-12-31", true},
		{"5.3.2025", "", false},
		{"2025-03-05", "", false},
		{"32.01.2025", "", false},
		{"29.02.2025", "", false},
		{"29.02.2024", "2024-02-29", true},
		{"", "", false},
		{"abc", "", false},
	}
	for _, tt := range tests {
		got, ok := parseDate(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"09:30", "09:30", true},
		{"00:00", "00:00", true},
		{"23:59", "23:59", true},
		{"9:30", "", false},
		{"24:00", "", false},
		{"09:60", "", false},
		{"0930", "", false},
	}
	for _, tt := range tests {
		got, ok := parseTime(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestComputeHours(t *testing.T) {
	assert.InDelta(t, 8.0, computeHours("09:00", "17:30", 30), 1e-9)
	assert.InDelta(t, 8.5, computeHours("09:00", "17:30", 0), 1e-9)
	// A shift ending after midnight wraps forward.
	assert.InDelta(t, 8.0, computeHours("22:00", "06:00", 0), 1e-9)
	assert.InDelta(t, 0.0, computeHours("10:00", "10:00", 0), 1e-9)
}

func TestResolvePeriod(t *testing.T) {
	// A Wednesday.
	now := time.Date(2025, 3, 5, 15, 4, 5, 0, time.UTC)

	start, end, ok := resolvePeriod(periodToday, now)
	assert.True(t, ok)
	assert.Equal(t, "2025-03-05", start)
	assert.Equal(t, "2025-03-05", end)

	start, end, _ = resolvePeriod(periodTomorrow, now)
	assert.Equal(t, "2025-03-06", start)
	assert.Equal(t, "2025-03-06", end)

	start, end, _ = resolvePeriod(periodWeek, now)
	assert.Equal(t, "2025-03-03", start)
	assert.Equal(t, "2025-03-09", end)

	start, end, _ = resolvePeriod(periodMonth, now)
	assert.Equal(t, "2025-03-01", start)
	assert.Equal(t, "2025-03-31", end)

	_, _, ok = resolvePeriod("fortnight", now)
	assert.False(t, ok)
}

func TestResolvePeriodWeekOnSunday(t *testing.T) {
	sunday := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	start, end, ok := resolvePeriod(periodWeek, sunday)
	assert.True(t, ok)
	assert.Equal(t, "2025-03-03", start)
	assert.Equal(t, "2025-03-09", end)
}
