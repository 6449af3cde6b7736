// Command pricecheck fetches spot prices for one area and prints the
// day table, cheapest windows and daily stats to stdout. Handy for
// cron jobs and shell scripting without running the full server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/mardo/elpriskollen-go/convert"
	"github.com/mardo/elpriskollen-go/elprisetjustnu"
	"github.com/mardo/elpriskollen-go/hours"
	"github.com/mardo/elpriskollen-go/nordpool"
	"github.com/mardo/elpriskollen-go/optimize"
	"github.com/mardo/elpriskollen-go/prices"
	"github.com/mardo/elpriskollen-go/stats"
	"github.com/mardo/elpriskollen-go/types"
)

func main() {
	area := flag.String("area", "SE3", "price area (SE1-SE4)")
	tomorrow := flag.Bool("tomorrow", false, "print tomorrow instead of today")
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelWarn,
	})))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	day := hours.LocationStockholm(time.Now())
	if *tomorrow {
		day = day.AddDate(0, 0, 1)
	}

	series, err := fetchDay(ctx, *area, day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetching prices: %v\n", err)
		os.Exit(1)
	}
	if len(series) == 0 {
		fmt.Printf("No prices published for %s yet\n", day.Format("2006-01-02"))
		os.Exit(0)
	}

	printDay(*area, day, series)
}

func fetchDay(ctx context.Context, area string, day time.Time) ([]types.HourlyPrice, error) {
	providers := []types.PriceProvider{
		elprisetjustnu.New(area),
		nordpool.New(area),
	}

	var lastErr error
	for _, p := range providers {
		raw, err := p.GetDayPrices(ctx, day)
		if err != nil {
			lastErr = err
			continue
		}
		return prices.Normalize(raw), nil
	}
	return nil, lastErr
}

func printDay(area string, day time.Time, series []types.HourlyPrice) {
	fmt.Printf("Spot prices %s %s (öre/kWh incl. VAT)\n\n", area, day.Format("2006-01-02"))

	for _, p := range series {
		marker := " "
		switch stats.HourStatus(series, p.Hour) {
		case stats.StatusCheap:
			marker = "+"
		case stats.StatusExpensive:
			marker = "-"
		}
		fmt.Printf("  %02d:00  %6.2f kr  %s\n", p.Hour, convert.OreToSek(p.Price), marker)
	}

	fmt.Printf("\nAverage: %.2f kr/kWh", convert.OreToSek(stats.DailyAverage(series)))
	if low, ok := stats.DailyLow(series).Get(); ok {
		fmt.Printf("   Low: %.2f kr at %02d:00", convert.OreToSek(low.Price), low.Hour)
	}
	if high, ok := stats.DailyHigh(series).Get(); ok {
		fmt.Printf("   High: %.2f kr at %02d:00", convert.OreToSek(high.Price), high.Hour)
	}
	fmt.Println()

	fmt.Println("\nCheapest windows:")
	for _, w := range []int{2, 4, 6, 8} {
		win, ok := optimize.CheapestWindow(series, w).Get()
		if !ok {
			continue
		}
		fmt.Printf("  %d h: %02d:00-%02d:59 at %.2f kr/kWh\n",
			w, win.StartIndex, win.EndIndex, convert.OreToSek(win.AveragePrice))
	}
}
