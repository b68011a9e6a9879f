package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayAt(t *testing.T, date string, clock string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	require.NoError(t, err)
	return parsed
}

func TestOverlaps(t *testing.T) {
	date := "2026-01-05"

	t.Run("partial overlap", func(t *testing.T) {
		assert.True(t, Overlaps(
			dayAt(t, date, "10:00"), dayAt(t, date, "12:00"),
			dayAt(t, date, "11:00"), dayAt(t, date, "13:00"),
		))
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		assert.False(t, Overlaps(
			dayAt(t, date, "09:00"), dayAt(t, date, "17:00"),
			dayAt(t, date, "17:00"), dayAt(t, date, "20:00"),
		))
	})

	t.Run("containment overlaps", func(t *testing.T) {
		assert.True(t, Overlaps(
			dayAt(t, date, "09:00"), dayAt(t, date, "17:00"),
			dayAt(t, date, "10:00"), dayAt(t, date, "11:00"),
		))
	})

	t.Run("symmetry", func(t *testing.T) {
		pairs := [][4]string{
			{"09:00", "17:00", "17:00", "20:00"},
			{"09:00", "17:00", "16:00", "20:00"},
			{"09:00", "10:00", "12:00", "13:00"},
			{"09:00", "17:00", "09:00", "17:00"},
		}
		for _, p := range pairs {
			a1, a2 := dayAt(t, date, p[0]), dayAt(t, date, p[1])
			b1, b2 := dayAt(t, date, p[2]), dayAt(t, date, p[3])
			assert.Equal(t, Overlaps(a1, a2, b1, b2), Overlaps(b1, b2, a1, a2))
		}
	})
}

func TestDurationHours(t *testing.T) {
	t.Run("rounds to one decimal", func(t *testing.T) {
		hours, err := DurationHours(dayAt(t, "2026-01-05", "09:00"), dayAt(t, "2026-01-05", "17:20"))
		require.NoError(t, err)
		assert.Equal(t, 8.3, hours)
	})

	t.Run("zero-length interval", func(t *testing.T) {
		start := dayAt(t, "2026-01-05", "09:00")
		hours, err := DurationHours(start, start)
		require.NoError(t, err)
		assert.Equal(t, 0.0, hours)
	})

	t.Run("inverted interval is a caller error", func(t *testing.T) {
		_, err := DurationHours(dayAt(t, "2026-01-05", "17:00"), dayAt(t, "2026-01-05", "09:00"))
		assert.Error(t, err)
	})
}

func TestWeekBounds(t *testing.T) {
	// 2026-01-07 is a Wednesday.
	wednesday := dayAt(t, "2026-01-07", "15:30")

	t.Run("monday weeks", func(t *testing.T) {
		start, end := WeekBounds(wednesday, time.Monday)
		assert.Equal(t, "2026-01-05", start.Format("2006-01-02"))
		assert.Equal(t, "2026-01-11", end.Format("2006-01-02"))
	})

	t.Run("sunday weeks", func(t *testing.T) {
		start, end := WeekBounds(wednesday, time.Sunday)
		assert.Equal(t, "2026-01-04", start.Format("2006-01-02"))
		assert.Equal(t, "2026-01-10", end.Format("2006-01-02"))
	})

	t.Run("week start day stays put", func(t *testing.T) {
		monday := dayAt(t, "2026-01-05", "00:00")
		start, end := WeekBounds(monday, time.Monday)
		assert.Equal(t, "2026-01-05", start.Format("2006-01-02"))
		assert.Equal(t, "2026-01-11", end.Format("2006-01-02"))
	})
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("22:45")
	require.NoError(t, err)
	assert.Equal(t, 22, hour)
	assert.Equal(t, 45, minute)

	_, _, err = ParseClock("25:00")
	assert.Error(t, err)

	_, _, err = ParseClock("")
	assert.Error(t, err)
}

func TestWeekdayWrap(t *testing.T) {
	assert.Equal(t, time.Sunday, NextWeekday(time.Saturday))
	assert.Equal(t, time.Tuesday, NextWeekday(time.Monday))
	assert.Equal(t, time.Saturday, PrevWeekday(time.Sunday))
	assert.Equal(t, time.Friday, PrevWeekday(time.Saturday))

	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.Equal(t, d, PrevWeekday(NextWeekday(d)))
	}
}
