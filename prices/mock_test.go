package prices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticIsStableWithinDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	a := Synthetic(day)
	b := Synthetic(day.Add(5 * time.Hour))

	require.Len(t, a, 24)
	assert.Equal(t, a, b, "same date must generate the same series")
}

func TestSyntheticCoversAllHours(t *testing.T) {
	series := Synthetic(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	require.Len(t, series, 24)
	for h, p := range series {
		assert.Equal(t, h, p.Hour)
		assert.Positive(t, p.Price)
	}
}

func TestSyntheticDaySet(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	set := SyntheticDaySet(now)

	assert.Len(t, set.Today, 24)
	assert.Len(t, set.Yesterday, 24)
	assert.True(t, set.HasTomorrow())
	assert.NotEqual(t, set.Today, set.Tomorrow, "different dates, different seeds")
	assert.Equal(t, now, set.LastUpdated)
}
