package www

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mardo/elpriskollen-go/prices"
)

// NewWindowsHandler renders the cheapest-window panel for the
// selected duration. The dashboard fetches this as an htmx-style
// partial when the visitor changes the selector.
func NewWindowsHandler(logger *slog.Logger, s *Server) http.HandlerFunc {
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

		data := struct {
			Windows []windowRow
		}{
			Windows: buildWindowRows(view, windowSize),
		}

		w.Header().Set("Content-Type", "text/html")
		if err := s.tm.ExecuteToWriter("windows.html", data, &w); err != nil {
			logger.Error("handling windows request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
