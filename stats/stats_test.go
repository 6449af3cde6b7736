package stats

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

func TestCheapestHours(t *testing.T) {
	series := day(50, 200, 30, 200, 10, 200, 200, 200)

	assert.Equal(t, []int{4, 2, 0}, CheapestHours(series))
}

func TestCheapestHoursStableOnTies(t *testing.T) {
	// hours 1, 3 and 5 share the boundary price; input order decides
	series := day(200, 30, 200, 30, 200, 30, 10)

	assert.Equal(t, []int{6, 1, 3}, CheapestHours(series))
}

func TestExpensiveHours(t *testing.T) {
	series := day(50, 200, 30, 300, 10, 250, 40, 45)

	assert.Equal(t, []int{3, 5, 1}, ExpensiveHours(series))
}

func TestExtremeHoursShortSeries(t *testing.T) {
	assert.Equal(t, []int{1, 0}, CheapestHours(day(20, 10)))
	assert.Empty(t, CheapestHours(nil))
}

func TestHourStatus(t *testing.T) {
	series := day(10, 20, 30, 100, 110, 120, 50, 60)

	assert.Equal(t, StatusCheap, HourStatus(series, 0))
	assert.Equal(t, StatusCheap, HourStatus(series, 2))
	assert.Equal(t, StatusExpensive, HourStatus(series, 5))
	assert.Equal(t, StatusNormal, HourStatus(series, 6))
	assert.Equal(t, StatusNormal, HourStatus(series, 17), "missing hour is normal")
}

func TestDailyExtremes(t *testing.T) {
	series := day(50, 200, 30, 200, 10)

	low, ok := DailyLow(series).Get()
	require.True(t, ok)
	assert.Equal(t, 4, low.Hour)
	assert.Equal(t, 10, low.Price)

	high, ok := DailyHigh(series).Get()
	require.True(t, ok)
	assert.Equal(t, 1, high.Hour, "first occurrence wins on equal prices")
}

func TestDailyExtremesEmpty(t *testing.T) {
	assert.False(t, DailyLow(nil).IsValid())
	assert.False(t, DailyHigh(nil).IsValid())
}

func TestPriceAt(t *testing.T) {
	series := day(50, 60, 70)

	p, ok := PriceAt(series, 1).Get()
	require.True(t, ok)
	assert.Equal(t, 60, p.Price)

	assert.False(t, PriceAt(series, 10).IsValid())
}

func TestAverageRange(t *testing.T) {
	series := day(10, 20, 30, 40)

	assert.Equal(t, 25, AverageRange(series, 0, 3))
	assert.Equal(t, 35, AverageRange(series, 2, 3))
	assert.Equal(t, 20, AverageRange(series, 1, 1))
}

func TestAverageRangeRounds(t *testing.T) {
	assert.Equal(t, 16, AverageRange(day(10, 21), 0, 1), "15.5 rounds away from zero")
}

func TestAverageRangeEmptyMatchIsZero(t *testing.T) {
	series := day(10, 20, 30)

	assert.Equal(t, 0, AverageRange(series, 10, 15))
	assert.Equal(t, 0, AverageRange(nil, 0, 23))
}

func TestDailyAverage(t *testing.T) {
	assert.Equal(t, 20, DailyAverage(day(10, 20, 30)))
	assert.Equal(t, 0, DailyAverage(nil))
}
