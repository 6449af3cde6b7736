package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mardo/elpriskollen-go/hours"
	"github.com/mardo/elpriskollen-go/types"
)

// EnergyPriceRow is one cached delivery hour, öre/kWh including VAT.
type EnergyPriceRow struct {
	When  hours.DateHour
	Price int
}

// HourlyPrice converts the row into the presentation model.
func (r EnergyPriceRow) HourlyPrice() types.HourlyPrice {
	return types.HourlyPrice{
		Hour:      int(r.When.Hour),
		Price:     r.Price,
		Timestamp: r.When.IsoString(),
	}
}

func (d *Database) SaveEnergyPrices(ctx context.Context, rows []EnergyPriceRow) error {
	fetchedAt := time.Now().UTC().Format(time.RFC3339)
	for _, row := range rows {
		_, err := d.write.ExecContext(ctx, `
			INSERT INTO energy_price (date, hour, price, fetched_at) VALUES (?, ?, ?, ?)
			ON CONFLICT(date, hour) DO UPDATE SET price = excluded.price, fetched_at = excluded.fetched_at`,
			row.When.Date,
			row.When.Hour,
			row.Price,
			fetchedAt)
		if err != nil {
			return fmt.Errorf("saving energy price for %s: %w", row.When, err)
		}
	}
	return nil
}

func (d *Database) GetEnergyPrice(ctx context.Context, dh hours.DateHour) (EnergyPriceRow, error) {
	row := d.read.QueryRowContext(ctx, `SELECT
		date, hour, price
		FROM energy_price
		WHERE date = ? AND hour = ?`,
		dh.Date, dh.Hour)

	var ep EnergyPriceRow
	if err := row.Scan(&ep.When.Date, &ep.When.Hour, &ep.Price); err != nil {
		return EnergyPriceRow{}, fmt.Errorf("fetching energy price for %s: %w", dh, err)
	}

	return ep, nil
}

// GetEnergyPricesForDate returns a day's cached series in ascending
// hour order. An unpublished day simply yields no rows.
func (d *Database) GetEnergyPricesForDate(ctx context.Context, date string) ([]EnergyPriceRow, error) {
	rows, err := d.read.QueryContext(ctx, `SELECT
		date, hour, price
		FROM energy_price
		WHERE date = ?
		ORDER BY hour ASC`,
		date)
	if err != nil {
		return nil, fmt.Errorf("fetching energy prices for %s: %w", date, err)
	}
	defer rows.Close()

	var energyPrices []EnergyPriceRow
	for rows.Next() {
		var ep EnergyPriceRow
		if err := rows.Scan(&ep.When.Date, &ep.When.Hour, &ep.Price); err != nil {
			return nil, fmt.Errorf("scanning energy price row: %w", err)
		}
		energyPrices = append(energyPrices, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading energy price rows: %w", err)
	}

	return energyPrices, nil
}

// GetLastFetched is the time prices were last written, zero when the
// cache is empty.
func (d *Database) GetLastFetched(ctx context.Context) (time.Time, error) {
	var fetchedAt *string
	err := d.read.QueryRowContext(ctx,
		`SELECT MAX(fetched_at) FROM energy_price`).Scan(&fetchedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("fetching last fetch time: %w", err)
	}
	if fetchedAt == nil {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, *fetchedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing last fetch time: %w", err)
	}
	return t, nil
}

func (d *Database) PurgeEnergyPrice(ctx context.Context, retentionDays int) error {
	return d.purgeTable(ctx, "energy_price", retentionDays)
}
