package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

// daily returns n consecutive days starting at start.
func daily(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func TestWeekBoundaries(t *testing.T) {
	// 2026-01-05 is a Monday, the start of ISO week 2.
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("three weeks of days", func(t *testing.T) {
		times := daily(monday, 21)
		boundaries := WeekBoundaries(times, false)

		require.Len(t, boundaries, 2, "21 days starting on Monday cross two week boundaries")
		assert.Equal(t, monday.AddDate(0, 0, 7), boundaries[0])
		assert.Equal(t, monday.AddDate(0, 0, 14), boundaries[1])
		for _, b := range boundaries {
			assert.Equal(t, time.Monday, b.Weekday())
		}
	})

	t.Run("include first", func(t *testing.T) {
		times := daily(monday, 21)
		boundaries := WeekBoundaries(times, true)
		require.Len(t, boundaries, 3)
		assert.Equal(t, monday, boundaries[0])
	})

	t.Run("single week has no boundaries", func(t *testing.T) {
		assert.Empty(t, WeekBoundaries(daily(monday, 7), false))
	})

	t.Run("year rollover", func(t *testing.T) {
		// 2025-12-29 is the Monday of ISO week 1 of 2026.
		start := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
		boundaries := WeekBoundaries(daily(start, 14), false)
		require.Len(t, boundaries, 2)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, WeekBoundaries(nil, false))
	})
}

func TestAddWeekSeparators(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	times := daily(monday, 21)

	p := plot.New()
	require.NoError(t, AddWeekSeparators(p, times, 0.9))

	t.Run("first sample gets a rule", func(t *testing.T) {
		seps := weekSeparators(times)
		require.Len(t, seps, 3, "one rule per week segment")
		assert.Equal(t, times[0], seps[0])
	})

	t.Run("empty times", func(t *testing.T) {
		assert.Error(t, AddWeekSeparators(plot.New(), nil, 0.9))
	})
}

func TestAddBoundaryLines(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	p := plot.New()
	require.NoError(t, AddBoundaryLines(p, daily(monday, 3), "#FF0000"))
	assert.Error(t, AddBoundaryLines(plot.New(), daily(monday, 3), "zzz"))
}

func TestTimeAxis(t *testing.T) {
	p := plot.New()
	TimeAxis(p, "")
	_, ok := p.X.Tick.Marker.(plot.TimeTicks)
	assert.True(t, ok)
}
