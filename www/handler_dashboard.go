package www

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mardo/elpriskollen-go/convert"
	"github.com/mardo/elpriskollen-go/hours"
	"github.com/mardo/elpriskollen-go/prices"
	"github.com/mardo/elpriskollen-go/stats"
	"github.com/mardo/elpriskollen-go/types"
)

type dashboardData struct {
	Area          string
	GeneratedAt   string
	LastUpdated   string
	Synthetic     bool
	HasTomorrow   bool
	CurrentLabel  string
	CurrentPrice  int
	CurrentSEK    float64
	CurrentStatus stats.Status
	DailyAverage  int
	DailyLow      *types.HourlyPrice
	DailyHigh     *types.HourlyPrice
	CheapestHours []int
	ExpensiveHrs  []int
	Rolling       []rollingRow
	Windows       []windowRow
	Appliances    []applianceRow
	Settings      types.CostSettings
}

func NewDashboardHandler(logger *slog.Logger, s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		now := time.Now()
		settings := s.settings.Load(r)
		set, synthetic := s.currentDaySet(r.Context(), now, settings)

		currentHour := currentStockholmHour(now)
		view := prices.RollingView(set.Today, set.Tomorrow, currentHour)

		data := dashboardData{
			Area:          s.area,
			GeneratedAt:   hours.FormatTimeInGuiTimezone(now),
			Synthetic:     synthetic,
			HasTomorrow:   set.HasTomorrow(),
			DailyAverage:  stats.DailyAverage(set.Today),
			CheapestHours: stats.CheapestHours(set.Today),
			ExpensiveHrs:  stats.ExpensiveHours(set.Today),
			Rolling:       buildRollingRows(view, set.Today),
			Windows:       buildWindowRows(view, 4),
			Appliances:    buildApplianceRows(view),
			Settings:      settings,
		}

		if !set.LastUpdated.IsZero() {
			data.LastUpdated = hours.FormatTimeInGuiTimezone(set.LastUpdated)
		}

		if p, ok := stats.PriceAt(set.Today, currentHour).Get(); ok {
			data.CurrentLabel = p.Timestamp
			data.CurrentPrice = p.Price
			data.CurrentSEK = convert.OreToSek(p.Price)
			data.CurrentStatus = stats.HourStatus(set.Today, currentHour)
		}

		if low, ok := stats.DailyLow(set.Today).Get(); ok {
			data.DailyLow = &low
		}
		if high, ok := stats.DailyHigh(set.Today).Get(); ok {
			data.DailyHigh = &high
		}

		markWindow(data.Rolling, view, 4)

		w.Header().Set("Content-Type", "text/html")
		if err := s.tm.ExecuteToWriter("dashboard.html", data, &w); err != nil {
			logger.Error("handling dashboard request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
