package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mardo/elpriskollen-go/types"
)

func day(prices ...int) []types.HourlyPrice {
	series := make([]types.HourlyPrice, len(prices))
	for h, p := range prices {
		series[h] = types.HourlyPrice{Hour: h, Price: p}
	}
	return series
}

func flat(price, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = price
	}
	return out
}

func TestCheapestWindowFindsMinimum(t *testing.T) {
	// hours 4-7 are the clear minimum
	var prices []int
	prices = append(prices, flat(100, 4)...)
	prices = append(prices, flat(50, 4)...)
	prices = append(prices, flat(200, 3)...)
	prices = append(prices, flat(100, 13)...)

	w, ok := CheapestWindow(day(prices...), 4).Get()

	require.True(t, ok)
	assert.Equal(t, 4, w.StartIndex)
	assert.Equal(t, 7, w.EndIndex)
	assert.Equal(t, 50, w.AveragePrice)
}

func TestCheapestWindowTieKeepsFirst(t *testing.T) {
	w, ok := CheapestWindow(day(flat(80, 24)...), 4).Get()

	require.True(t, ok)
	assert.Equal(t, 0, w.StartIndex, "equal sums resolve to the earliest start")
	assert.Equal(t, 3, w.EndIndex)
}

func TestCheapestWindowIsHourAddressed(t *testing.T) {
	// A partial day starting at hour 10. Results address hours, not
	// positions in the slice.
	series := []types.HourlyPrice{
		{Hour: 10, Price: 100},
		{Hour: 11, Price: 30},
		{Hour: 12, Price: 30},
		{Hour: 13, Price: 100},
	}

	w, ok := CheapestWindow(series, 2).Get()

	require.True(t, ok)
	assert.Equal(t, 11, w.StartIndex)
	assert.Equal(t, 12, w.EndIndex)
}

func TestCheapestWindowUnsortedInput(t *testing.T) {
	series := []types.HourlyPrice{
		{Hour: 3, Price: 10},
		{Hour: 1, Price: 100},
		{Hour: 2, Price: 10},
		{Hour: 0, Price: 100},
	}

	w, ok := CheapestWindow(series, 2).Get()

	require.True(t, ok)
	assert.Equal(t, 2, w.StartIndex)
	assert.Equal(t, 3, w.EndIndex)
	assert.Equal(t, 10, w.AveragePrice)
}

func TestCheapestWindowOversized(t *testing.T) {
	assert.False(t, CheapestWindow(day(flat(100, 5)...), 6).IsValid())
	assert.False(t, CheapestWindow(nil, 1).IsValid())
	assert.False(t, CheapestWindow(day(flat(100, 5)...), 0).IsValid())
}

func TestCheapestWindowAverageRounds(t *testing.T) {
	w, ok := CheapestWindow(day(10, 11, 200), 2).Get()

	require.True(t, ok)
	assert.Equal(t, 11, w.AveragePrice, "10.5 rounds away from zero")
}

func TestCheapestSpanIsPositionAddressed(t *testing.T) {
	view := []types.RollingHourEntry{
		{HourlyPrice: types.HourlyPrice{Hour: 22, Price: 100}},
		{HourlyPrice: types.HourlyPrice{Hour: 23, Price: 20}},
		{HourlyPrice: types.HourlyPrice{Hour: 0, Price: 20}, IsNextDay: true},
		{HourlyPrice: types.HourlyPrice{Hour: 1, Price: 100}, IsNextDay: true},
	}

	w, ok := CheapestSpan(view, 2).Get()

	require.True(t, ok)
	assert.Equal(t, 1, w.StartIndex, "position in the view, not hour of day")
	assert.Equal(t, 2, w.EndIndex)
	assert.Equal(t, 20, w.AveragePrice)
}

func TestCheapestAcrossDays(t *testing.T) {
	today := day(flat(100, 24)...)
	today[22].Price = 10
	today[23].Price = 10

	tomorrow := day(flat(100, 24)...)
	tomorrow[0].Price = 10
	tomorrow[1].Price = 10

	w, ok := CheapestAcrossDays(today, tomorrow, 4).Get()

	require.True(t, ok)
	assert.Equal(t, 22, w.StartIndex)
	assert.Equal(t, 25, w.EndIndex, "tomorrow's hours carry a +24 offset")
	assert.Equal(t, 10, w.AveragePrice)
	assert.True(t, w.CrossesMidnight)
}

func TestCheapestAcrossDaysStaysWithinToday(t *testing.T) {
	today := day(flat(100, 24)...)
	today[2].Price = 10
	today[3].Price = 10

	w, ok := CheapestAcrossDays(today, day(flat(100, 24)...), 2).Get()

	require.True(t, ok)
	assert.Equal(t, 2, w.StartIndex)
	assert.Equal(t, 3, w.EndIndex)
	assert.False(t, w.CrossesMidnight)
}

func TestCheapestAcrossDaysWithoutTomorrow(t *testing.T) {
	w, ok := CheapestAcrossDays(day(flat(100, 24)...), nil, 4).Get()

	require.True(t, ok)
	assert.Equal(t, 0, w.StartIndex)
	assert.False(t, w.CrossesMidnight)
}
