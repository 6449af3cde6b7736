// Package stats classifies and summarizes a day's price series:
// cheap/expensive hours, daily extremes and range averages.
package stats

import (
	"math"
	"sort"

	"github.com/mardo/elpriskollen-go/slice"
	"github.com/mardo/elpriskollen-go/types"
	"github.com/mardo/elpriskollen-go/types/maybe"
)

// Status classifies an hour relative to the rest of its day.
type Status string

const (
	StatusCheap     Status = "cheap"
	StatusExpensive Status = "expensive"
	StatusNormal    Status = "normal"
)

const extremeHourCount = 3

// CheapestHours returns the hours of the 3 lowest-priced entries.
// Equal prices keep their input order (stable sort), so boundary ties
// are resolved by whichever entries sort first.
func CheapestHours(series []types.HourlyPrice) []int {
	return extremeHours(series, func(a, b types.HourlyPrice) bool { return a.Price < b.Price })
}

// ExpensiveHours returns the hours of the 3 highest-priced entries.
func ExpensiveHours(series []types.HourlyPrice) []int {
	return extremeHours(series, func(a, b types.HourlyPrice) bool { return a.Price > b.Price })
}

func extremeHours(series []types.HourlyPrice, less func(a, b types.HourlyPrice) bool) []int {
	sorted := make([]types.HourlyPrice, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	n := min(extremeHourCount, len(sorted))
	hours := make([]int, n)
	for i := 0; i < n; i++ {
		hours[i] = sorted[i].Hour
	}
	return hours
}

// HourStatus classifies an hour as cheap if it is among the 3
// lowest-priced hours of the day, expensive if among the 3 highest,
// otherwise normal.
func HourStatus(series []types.HourlyPrice, hour int) Status {
	for _, h := range CheapestHours(series) {
		if h == hour {
			return StatusCheap
		}
	}
	for _, h := range ExpensiveHours(series) {
		if h == hour {
			return StatusExpensive
		}
	}
	return StatusNormal
}

// DailyHigh is the single highest-priced hour of the day. First
// occurrence wins on ties (strict comparison). None for an empty
// series.
func DailyHigh(series []types.HourlyPrice) maybe.Maybe[types.HourlyPrice] {
	return extreme(series, func(candidate, best types.HourlyPrice) bool {
		return candidate.Price > best.Price
	})
}

// DailyLow is the single lowest-priced hour of the day.
func DailyLow(series []types.HourlyPrice) maybe.Maybe[types.HourlyPrice] {
	return extreme(series, func(candidate, best types.HourlyPrice) bool {
		return candidate.Price < best.Price
	})
}

func extreme(series []types.HourlyPrice, better func(candidate, best types.HourlyPrice) bool) maybe.Maybe[types.HourlyPrice] {
	if len(series) == 0 {
		return maybe.None[types.HourlyPrice]()
	}
	best := series[0]
	for _, p := range series[1:] {
		if better(p, best) {
			best = p
		}
	}
	return maybe.Some(best)
}

// PriceAt is the entry for a specific hour-of-day, if present.
func PriceAt(series []types.HourlyPrice, hour int) maybe.Maybe[types.HourlyPrice] {
	return maybe.FromOk(slice.Find(series, func(p types.HourlyPrice) bool { return p.Hour == hour }))
}

// AverageRange is the mean price of all entries whose hour falls in
// the inclusive [startHour, endHour] range, rounded to whole öre.
// Returns 0 when no entries match; callers treat that as "no data".
func AverageRange(series []types.HourlyPrice, startHour, endHour int) int {
	matched := slice.Filter(series, func(p types.HourlyPrice) bool {
		return p.Hour >= startHour && p.Hour <= endHour
	})
	if len(matched) == 0 {
		return 0
	}
	sum := slice.SumBy(matched, func(p types.HourlyPrice) int { return p.Price })
	return int(math.Round(float64(sum) / float64(len(matched))))
}

// DailyAverage is the mean price over the whole series, rounded.
func DailyAverage(series []types.HourlyPrice) int {
	if len(series) == 0 {
		return 0
	}
	sum := slice.SumBy(series, func(p types.HourlyPrice) int { return p.Price })
	return int(math.Round(float64(sum) / float64(len(series))))
}
