package prices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mardo/elpriskollen-go/types"
)

func stockholm(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)
	return loc
}

func TestNormalizeAppliesVat(t *testing.T) {
	loc := stockholm(t)
	raw := []types.RawSpotEntry{
		{TimeStart: time.Date(2026, 1, 15, 10, 0, 0, 0, loc), SEKPerKWh: 1.00},
	}

	series := Normalize(raw)

	require.Len(t, series, 1)
	assert.Equal(t, 10, series[0].Hour)
	assert.Equal(t, 125, series[0].Price, "1.00 SEK/kWh is 125 öre incl VAT")
}

func TestNormalizeAveragesMultipleEntriesPerHour(t *testing.T) {
	loc := stockholm(t)
	hour := time.Date(2026, 1, 15, 10, 0, 0, 0, loc)
	raw := []types.RawSpotEntry{
		{TimeStart: hour, SEKPerKWh: 1.00},
		{TimeStart: hour.Add(15 * time.Minute), SEKPerKWh: 1.10},
		{TimeStart: hour.Add(30 * time.Minute), SEKPerKWh: 1.00},
		{TimeStart: hour.Add(45 * time.Minute), SEKPerKWh: 1.10},
	}

	series := Normalize(raw)

	require.Len(t, series, 1)
	// mean of 125 and 137.5 öre, rounded once
	assert.Equal(t, 131, series[0].Price)
}

func TestNormalizeSortsAscendingByHour(t *testing.T) {
	loc := stockholm(t)
	raw := []types.RawSpotEntry{
		{TimeStart: time.Date(2026, 1, 15, 23, 0, 0, 0, loc), SEKPerKWh: 0.50},
		{TimeStart: time.Date(2026, 1, 15, 0, 0, 0, 0, loc), SEKPerKWh: 0.60},
		{TimeStart: time.Date(2026, 1, 15, 12, 0, 0, 0, loc), SEKPerKWh: 0.70},
	}

	series := Normalize(raw)

	require.Len(t, series, 3)
	assert.Equal(t, []int{0, 12, 23}, []int{series[0].Hour, series[1].Hour, series[2].Hour})
}

func TestNormalizePartialDay(t *testing.T) {
	loc := stockholm(t)
	var raw []types.RawSpotEntry
	for h := 0; h < 13; h++ {
		raw = append(raw, types.RawSpotEntry{
			TimeStart: time.Date(2026, 1, 15, h, 0, 0, 0, loc),
			SEKPerKWh: 1.0,
		})
	}

	series := Normalize(raw)

	assert.Len(t, series, 13, "a partially published day is valid input")
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Nil(t, Normalize([]types.RawSpotEntry{}))
}

func TestNormalizeRoundTripIsIdempotent(t *testing.T) {
	loc := stockholm(t)

	// An öre value divided by the VAT multiple round-trips exactly.
	for _, ore := range []int{0, 1, 50, 125, 999} {
		raw := []types.RawSpotEntry{
			{TimeStart: time.Date(2026, 1, 15, 8, 0, 0, 0, loc), SEKPerKWh: float64(ore) / 125.0},
		}
		series := Normalize(raw)
		require.Len(t, series, 1)
		assert.Equal(t, ore, series[0].Price)
	}
}
