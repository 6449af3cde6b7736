// Package prices holds the price-series model of the dashboard:
// normalization of raw feed entries into hourly öre/kWh series,
// the optional tariff adjustment and the rolling 24-hour view.
// Everything here is a pure transform over in-memory slices.
package prices

import (
	"errors"
	"math"
	"sort"

	"github.com/mardo/elpriskollen-go/hours"
	"github.com/mardo/elpriskollen-go/types"
)

// ErrNoData is reported when a feed supplies zero usable entries for a
// day. Callers fall back to the synthetic generator rather than crash.
var ErrNoData = errors.New("no price data for day")

// Normalize turns raw feed entries (one or more per hour, arbitrary
// order, SEK/kWh excluding VAT) into exactly one HourlyPrice per
// supplied hour, ascending, in öre/kWh including VAT.
//
// VAT is applied per entry; hours with several entries get the mean of
// their VAT-inclusive values, rounded once to whole öre. Fewer than 24
// hours is valid input (a partially published day).
func Normalize(raw []types.RawSpotEntry) []types.HourlyPrice {
	if len(raw) == 0 {
		return nil
	}

	type bucket struct {
		sum       float64
		n         int
		timestamp string
	}
	buckets := make(map[int]*bucket)

	for _, entry := range raw {
		dh := hours.FromTime(entry.TimeStart)
		hour := int(dh.Hour)
		b, ok := buckets[hour]
		if !ok {
			b = &bucket{timestamp: dh.IsoString()}
			buckets[hour] = b
		}
		b.sum += entry.SEKPerKWh * 100 * types.VatRate
		b.n++
	}

	series := make([]types.HourlyPrice, 0, len(buckets))
	for hour, b := range buckets {
		series = append(series, types.HourlyPrice{
			Hour:      hour,
			Price:     int(math.Round(b.sum / float64(b.n))),
			Timestamp: b.timestamp,
		})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Hour < series[j].Hour })

	return series
}
