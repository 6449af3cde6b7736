package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/mardo/elpriskollen-go/database"
	"github.com/mardo/elpriskollen-go/hours"
	"github.com/mardo/elpriskollen-go/prices"
	"github.com/mardo/elpriskollen-go/types"
)

// NewEnergyPriceTask builds the 15-minute refresh. Providers are tried
// in order; the first one that answers wins. Tomorrow not being
// published yet is normal and not treated as a failure. onUpdated is
// invoked with the fresh day set after every successful refresh.
func NewEnergyPriceTask(
	logger *slog.Logger,
	db *database.Database,
	providers []types.PriceProvider,
	onUpdated func(types.PriceDaySet),
) func() {
	if len(providers) == 0 {
		panic("no price providers")
	}

	run := func() { runEnergyPriceTask(logger, db, providers, onUpdated) }

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if needImmediateUpdate(ctx, db) {
		logger.Info("need an immediate update of energy prices")
		run()
	} else {
		logger.Debug("no need for immediate update of energy prices")
	}

	return run
}

func runEnergyPriceTask(
	logger *slog.Logger,
	db *database.Database,
	providers []types.PriceProvider,
	onUpdated func(types.PriceDaySet),
) {
	logger.Debug("running energy price task...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	var rows []database.EnergyPriceRow
	for _, provider := range providers {
		fetched, err := fetchDays(ctx, provider, now)
		if err != nil {
			logger.Error("energy price task error, fetching energy prices", slog.Any("error", err))
			continue
		}
		rows = fetched
		break
	}

	if len(rows) == 0 {
		logger.Error("energy price task error, no prices fetched")
		return
	}

	if err := db.SaveEnergyPrices(ctx, rows); err != nil {
		logger.Error("energy price task error", slog.Any("error", err))
		return
	}

	logger.Info("energy price task done", slog.Int("noOfHoursUpdated", len(rows)))

	if onUpdated == nil {
		return
	}
	set, err := db.GetDaySet(ctx, now)
	if err != nil {
		logger.Error("energy price task error, assembling day set", slog.Any("error", err))
		return
	}
	onUpdated(set)
}

// fetchDays pulls yesterday, today and tomorrow from one provider and
// normalizes each day into hourly rows. A day without published
// prices contributes nothing; a completely empty today is a failure
// so the next provider gets a chance.
func fetchDays(ctx context.Context, provider types.PriceProvider, now time.Time) ([]database.EnergyPriceRow, error) {
	var rows []database.EnergyPriceRow
	for _, offset := range []int{-1, 0, 1} {
		day := now.AddDate(0, 0, offset)
		raw, err := provider.GetDayPrices(ctx, day)
		if err != nil {
			return nil, err
		}

		date := hours.FromTime(day).Date
		for _, p := range prices.Normalize(raw) {
			rows = append(rows, database.EnergyPriceRow{
				When:  hours.DateHour{Date: date, Hour: uint8(p.Hour)},
				Price: p.Price,
			})
		}

		if offset == 0 && len(raw) == 0 {
			return nil, prices.ErrNoData
		}
	}
	return rows, nil
}

func needImmediateUpdate(ctx context.Context, db *database.Database) bool {
	dh := hours.FromNow().Add(1)
	if _, err := db.GetEnergyPrice(ctx, dh); err != nil {
		return true
	}
	return false
}
