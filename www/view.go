package www

import (
	"context"
	"log/slog"
	"time"

	"github.com/mardo/elpriskollen-go/appliance"
	"github.com/mardo/elpriskollen-go/hours"
	"github.com/mardo/elpriskollen-go/optimize"
	"github.com/mardo/elpriskollen-go/prices"
	"github.com/mardo/elpriskollen-go/stats"
	"github.com/mardo/elpriskollen-go/types"
)

// windowChoices are the durations offered by the dashboard selector.
var windowChoices = []int{2, 4, 6, 8}

// currentDaySet loads the stored series and applies the visitor's
// cost settings. When the database has nothing for today (fresh
// install, all feeds down) a synthetic series stands in so the pages
// always render.
func (s *Server) currentDaySet(ctx context.Context, now time.Time, settings types.CostSettings) (types.PriceDaySet, bool) {
	synthetic := false

	set, err := s.db.GetDaySet(ctx, now)
	if err != nil {
		s.logger.Warn("failed to load stored prices", slog.Any("error", err))
		set = types.PriceDaySet{}
	}
	if len(set.Today) == 0 {
		set = prices.SyntheticDaySet(now)
		synthetic = true
	}

	return prices.AdjustDaySet(set, settings), synthetic
}

type rollingRow struct {
	Label     string
	Price     int
	Status    stats.Status
	IsNextDay bool
	InWindow  bool
	IsCurrent bool
}

type windowRow struct {
	Hours           int
	StartLabel      string
	EndLabel        string
	AveragePrice    int
	CrossesMidnight bool
	Selected        bool
}

type applianceRow struct {
	Name      string
	KWhRange  string
	KWh       float64
	CostNow   float64
	CostBest  float64
	Savings   float64
	BestLabel string
}

func buildRollingRows(view []types.RollingHourEntry, today []types.HourlyPrice) []rollingRow {
	rows := make([]rollingRow, len(view))
	for i, e := range view {
		status := stats.StatusNormal
		if !e.IsNextDay {
			status = stats.HourStatus(today, e.OriginalHour)
		}
		rows[i] = rollingRow{
			Label:     e.DisplayLabel,
			Price:     e.Price,
			Status:    status,
			IsNextDay: e.IsNextDay,
			IsCurrent: i == 0,
		}
	}
	return rows
}

// buildWindowRows runs the optimizer for every selector duration over
// the rolling view. Durations longer than the view yield no row.
func buildWindowRows(view []types.RollingHourEntry, selected int) []windowRow {
	var rows []windowRow
	for _, h := range windowChoices {
		w, ok := optimize.CheapestSpan(view, h).Get()
		if !ok {
			continue
		}
		rows = append(rows, windowRow{
			Hours:           h,
			StartLabel:      view[w.StartIndex].DisplayLabel,
			EndLabel:        view[w.EndIndex].DisplayLabel,
			AveragePrice:    w.AveragePrice,
			CrossesMidnight: view[w.StartIndex].IsNextDay != view[w.EndIndex].IsNextDay,
			Selected:        h == selected,
		})
	}
	return rows
}

func markWindow(rows []rollingRow, view []types.RollingHourEntry, windowSize int) {
	if w, ok := optimize.CheapestSpan(view, windowSize).Get(); ok {
		for i := w.StartIndex; i <= w.EndIndex && i < len(rows); i++ {
			rows[i].InWindow = true
		}
	}
}

// buildApplianceRows estimates what each appliance category costs
// right now versus started at the cheapest upcoming hour.
func buildApplianceRows(view []types.RollingHourEntry) []applianceRow {
	if len(view) == 0 {
		return nil
	}
	currentPrice := view[0].Price

	best, ok := optimize.CheapestSpan(view, 1).Get()
	if !ok {
		return nil
	}
	bestPrice := best.AveragePrice
	bestLabel := view[best.StartIndex].DisplayLabel

	rows := make([]applianceRow, 0, len(appliance.Categories))
	for _, cat := range appliance.Categories {
		rows = append(rows, applianceRow{
			Name:      cat.Name,
			KWhRange:  cat.KWhRange,
			KWh:       cat.KWh,
			CostNow:   cat.CostAt(currentPrice),
			CostBest:  cat.CostAt(bestPrice),
			Savings:   cat.SavingsAt(currentPrice, bestPrice),
			BestLabel: bestLabel,
		})
	}
	return rows
}

func currentStockholmHour(now time.Time) int {
	return int(hours.FromTime(now).Hour)
}
