package prices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mardo/elpriskollen-go/types"
)

func fullDay(basePrice int) []types.HourlyPrice {
	series := make([]types.HourlyPrice, 24)
	for h := 0; h < 24; h++ {
		series[h] = types.HourlyPrice{Hour: h, Price: basePrice + h}
	}
	return series
}

func TestRollingViewWithoutTomorrow(t *testing.T) {
	view := RollingView(fullDay(100), nil, 22)

	require.Len(t, view, 2, "only the remainder of today")
	assert.Equal(t, "22:00", view[0].DisplayLabel)
	assert.Equal(t, "23:00", view[1].DisplayLabel)
	assert.False(t, view[0].IsNextDay)
	assert.False(t, view[1].IsNextDay)
}

func TestRollingViewWithTomorrow(t *testing.T) {
	view := RollingView(fullDay(100), fullDay(200), 22)

	require.Len(t, view, 24)

	assert.Equal(t, 22, view[0].OriginalHour)
	assert.Equal(t, 122, view[0].Price)
	assert.Equal(t, 23, view[1].OriginalHour)

	// positions 2..23 are tomorrow's hours 0..21
	assert.Equal(t, "00:00 (+1)", view[2].DisplayLabel)
	assert.True(t, view[2].IsNextDay)
	assert.Equal(t, 0, view[2].OriginalHour)
	assert.Equal(t, 200, view[2].Price)

	last := view[23]
	assert.True(t, last.IsNextDay)
	assert.Equal(t, 21, last.OriginalHour)
	assert.Equal(t, "21:00 (+1)", last.DisplayLabel)
}

func TestRollingViewAtMidnight(t *testing.T) {
	view := RollingView(fullDay(100), fullDay(200), 0)

	require.Len(t, view, 24, "all of today, nothing from tomorrow")
	for _, e := range view {
		assert.False(t, e.IsNextDay)
	}
}

func TestRollingViewPartialTomorrow(t *testing.T) {
	tomorrow := fullDay(200)[:13]
	view := RollingView(fullDay(100), tomorrow, 20)

	// 4 hours of today plus tomorrow's 0..12
	require.Len(t, view, 17)
	assert.Equal(t, "20:00", view[0].DisplayLabel)
	assert.Equal(t, "12:00 (+1)", view[16].DisplayLabel)
}

func TestRollingViewEmptyToday(t *testing.T) {
	assert.Empty(t, RollingView(nil, nil, 12))
}
