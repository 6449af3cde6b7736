package prices

import (
	"math"
	"math/rand"
	"time"

	"github.com/mardo/elpriskollen-go/hours"
	"github.com/mardo/elpriskollen-go/types"
)

// Synthetic generates a plausible 24-hour price series for a day, used
// as the last-resort fallback when every upstream feed is unreachable.
// Seeded from the date so repeated calls within a day are stable.
func Synthetic(day time.Time) []types.HourlyPrice {
	day = hours.LocationStockholm(day)
	rng := rand.New(rand.NewSource(int64(day.Year())*10000 + int64(day.YearDay())))

	series := make([]types.HourlyPrice, 24)
	for i := 0; i < 24; i++ {
		start := time.Date(day.Year(), day.Month(), day.Day(), i, 0, 0, 0, day.Location())
		spotOre := 50 + rng.Float64()*150 + math.Sin(float64(i)/3)*50
		series[i] = types.HourlyPrice{
			Hour:      i,
			Price:     int(math.Round(spotOre * types.VatRate)),
			Timestamp: hours.FromTime(start).IsoString(),
		}
	}
	return series
}

// SyntheticDaySet is a full fallback day set around a point in time.
func SyntheticDaySet(now time.Time) types.PriceDaySet {
	return types.PriceDaySet{
		Today:       Synthetic(now),
		Yesterday:   Synthetic(now.AddDate(0, 0, -1)),
		Tomorrow:    Synthetic(now.AddDate(0, 0, 1)),
		LastUpdated: now,
	}
}
