package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mardo/elpriskollen-go/hours"
	"github.com/mardo/elpriskollen-go/types"
)

// GetDaySet assembles the yesterday/today/tomorrow series around a
// point in time. Tomorrow stays nil until its prices are cached. An
// empty Today means the cache has nothing usable and the caller should
// fall back to the synthetic generator.
func (d *Database) GetDaySet(ctx context.Context, now time.Time) (types.PriceDaySet, error) {
	set := types.PriceDaySet{}

	dates := []struct {
		offset int
		dest   *[]types.HourlyPrice
	}{
		{-1, &set.Yesterday},
		{0, &set.Today},
		{1, &set.Tomorrow},
	}

	for _, day := range dates {
		date := hours.FromTime(now.AddDate(0, 0, day.offset)).Date
		rows, err := d.GetEnergyPricesForDate(ctx, date)
		if err != nil {
			return types.PriceDaySet{}, fmt.Errorf("assembling day set: %w", err)
		}
		if len(rows) == 0 {
			continue
		}
		series := make([]types.HourlyPrice, len(rows))
		for i, row := range rows {
			series[i] = row.HourlyPrice()
		}
		*day.dest = series
	}

	fetched, err := d.GetLastFetched(ctx)
	if err != nil {
		return types.PriceDaySet{}, err
	}
	set.LastUpdated = fetched

	return set, nil
}
