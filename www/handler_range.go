package www

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mardo/elpriskollen-go/calc"
	"github.com/mardo/elpriskollen-go/convert"
	"github.com/mardo/elpriskollen-go/stats"
)

// NewRangeHandler is the average-price calculator: given an hour
// range and an optional consumption figure it reports the average
// price over the range and the cost of running there.
func NewRangeHandler(logger *slog.Logger, s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		from := intOrDefault(r.URL, "from", 0)
		to := intOrDefault(r.URL, "to", 23)
		kWh := floatOrDefault(r.URL, "kwh", 1)
		if from < 0 || from > 23 || to < 0 || to > 23 || kWh < 0 {
			http.Error(w, "from and to must be hours 0-23", http.StatusBadRequest)
			return
		}

		now := time.Now()
		settings := s.settings.Load(r)
		set, _ := s.currentDaySet(r.Context(), now, settings)

		avg := stats.AverageRange(set.Today, from, to)

		data := struct {
			From     int
			To       int
			KWh      float64
			Average  int
			AvgSEK   float64
			CostSEK  float64
			HasMatch bool
		}{
			From:     from,
			To:       to,
			KWh:      kWh,
			Average:  avg,
			AvgSEK:   convert.OreToSek(avg),
			CostSEK:  calc.CostSEK(avg, kWh),
			HasMatch: avg > 0,
		}

		w.Header().Set("Content-Type", "text/html")
		if err := s.tm.ExecuteToWriter("range.html", data, &w); err != nil {
			logger.Error("handling range request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
