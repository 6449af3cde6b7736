// Package optimize finds the contiguous window of hours with the
// lowest total price in a day's series, in the rolling 24-hour view,
// or across a today/tomorrow boundary.
package optimize

import (
	"math"
	"sort"

	"github.com/mardo/elpriskollen-go/types"
	"github.com/mardo/elpriskollen-go/types/maybe"
)

// CheapestWindow searches one day's series for the cheapest window of
// windowSize consecutive hours. The result is hour-addressed: its
// StartIndex/EndIndex are hour-of-day values. Input in any order; it
// is sorted by hour before the scan. None when the series is shorter
// than the window.
func CheapestWindow(series []types.HourlyPrice, windowSize int) maybe.Maybe[types.Window] {
	sorted := make([]types.HourlyPrice, len(series))
	copy(sorted, series)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Hour < sorted[j].Hour })

	start, avg, ok := scan(priceValues(sorted), windowSize)
	if !ok {
		return maybe.None[types.Window]()
	}

	return maybe.Some(types.Window{
		StartIndex:   sorted[start].Hour,
		EndIndex:     sorted[start+windowSize-1].Hour,
		AveragePrice: avg,
	})
}

// CheapestSpan searches any ordered sequence, typically the rolling
// 24-hour view. The result is sequence-addressed: StartIndex/EndIndex
// are positions into the input and the caller maps them back to
// display hours via the sequence itself.
func CheapestSpan(view []types.RollingHourEntry, windowSize int) maybe.Maybe[types.Window] {
	values := make([]int, len(view))
	for i, e := range view {
		values[i] = e.Price
	}

	start, avg, ok := scan(values, windowSize)
	if !ok {
		return maybe.None[types.Window]()
	}

	return maybe.Some(types.Window{
		StartIndex:   start,
		EndIndex:     start + windowSize - 1,
		AveragePrice: avg,
	})
}

// CheapestAcrossDays searches the concatenation of today and tomorrow
// by hour value, with tomorrow's hours offset by +24 so the sequence
// stays monotonic. CrossesMidnight is set when the winning window ends
// on the next day (EndIndex >= 24).
func CheapestAcrossDays(today, tomorrow []types.HourlyPrice, windowSize int) maybe.Maybe[types.Window] {
	combined := make([]types.HourlyPrice, 0, len(today)+len(tomorrow))
	combined = append(combined, today...)
	for _, p := range tomorrow {
		p.Hour += 24
		combined = append(combined, p)
	}
	sort.Slice(combined, func(i, j int) bool { return combined[i].Hour < combined[j].Hour })

	start, avg, ok := scan(priceValues(combined), windowSize)
	if !ok {
		return maybe.None[types.Window]()
	}

	end := combined[start+windowSize-1].Hour
	return maybe.Some(types.Window{
		StartIndex:      combined[start].Hour,
		EndIndex:        end,
		AveragePrice:    avg,
		CrossesMidnight: end >= 24,
	})
}

// scan slides a window of length w over values and returns the start
// position and rounded average of the first window with the minimum
// sum. Ties are won by the lowest start position, nothing else.
func scan(values []int, w int) (start int, avgPrice int, ok bool) {
	if w < 1 || w > len(values) {
		return 0, 0, false
	}

	minSum := math.MaxInt
	for i := 0; i+w <= len(values); i++ {
		sum := 0
		for _, v := range values[i : i+w] {
			sum += v
		}
		if sum < minSum {
			minSum = sum
			start = i
		}
	}

	return start, int(math.Round(float64(minSum) / float64(w))), true
}

func priceValues(series []types.HourlyPrice) []int {
	values := make([]int, len(series))
	for i, p := range series {
		values[i] = p.Price
	}
	return values
}
