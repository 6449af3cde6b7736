package www

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mardo/elpriskollen-go/convert"
	"github.com/mardo/elpriskollen-go/optimize"
	"github.com/mardo/elpriskollen-go/prices"
	"github.com/mardo/elpriskollen-go/slice"
	"github.com/mardo/elpriskollen-go/types"
	"github.com/mardo/elpriskollen-go/www/chartjs"
)

// NewChartHandler serves the rolling 24h price curve as a chart.js
// config. Dataset 1 carries values only inside the cheapest window of
// the requested duration, which chart.js renders as a filled band.
func NewChartHandler(logger *slog.Logger, s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		windowSize := intOrDefault(r.URL, "hours", 4)
		if !validWindowSize(windowSize) {
			http.Error(w, "hours must be one of 2, 4, 6, 8", http.StatusBadRequest)
			return
		}

		now := time.Now()
		settings := s.settings.Load(r)
		set, _ := s.currentDaySet(r.Context(), now, settings)
		view := prices.RollingView(set.Today, set.Tomorrow, currentStockholmHour(now))

		labels := slice.Map(view, func(e types.RollingHourEntry) string { return e.DisplayLabel })
		chart := chartjs.NewPriceChart("Elpris kommande 24h", labels)

		for i, e := range view {
			chart.Data.Datasets[0].Data[i] = chartjs.FixedFloat64(convert.OreToSek(e.Price), 2)
		}

		if win, ok := optimize.CheapestSpan(view, windowSize).Get(); ok {
			for i := win.StartIndex; i <= win.EndIndex && i < len(view); i++ {
				chart.Data.Datasets[1].Data[i] = chartjs.FixedFloat64(convert.OreToSek(view[i].Price), 2)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]chartjs.Chart{chart}); err != nil {
			logger.Error("handling chart request", slog.Any("error", err))
			http.Error(w, "unable to encode data points", http.StatusInternalServerError)
		}
	}
}

func validWindowSize(h int) bool {
	for _, c := range windowChoices {
		if h == c {
			return true
		}
	}
	return false
}
