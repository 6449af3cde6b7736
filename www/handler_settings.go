package www

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mardo/elpriskollen-go/types"
)

// NewSettingsHandler shows and saves the visitor's cost settings
// (network fee and supplier markup in öre/kWh). The values live in a
// cookie session, never in the database.
func NewSettingsHandler(logger *slog.Logger, s *Server) http.HandlerFunc {
	render := func(w http.ResponseWriter, settings types.CostSettings, saved bool) {
		data := struct {
			Settings types.CostSettings
			Saved    bool
		}{
			Settings: settings,
			Saved:    saved,
		}
		w.Header().Set("Content-Type", "text/html")
		if err := s.tm.ExecuteToWriter("settings.html", data, &w); err != nil {
			logger.Error("handling settings request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			render(w, s.settings.Load(r), false)

		case http.MethodPost:
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form", http.StatusBadRequest)
				return
			}

			settings := s.settings.Load(r)
			if v, err := strconv.ParseFloat(r.PostFormValue("network_fee"), 64); err == nil && v >= 0 {
				settings.NetworkFee = v
			}
			if v, err := strconv.ParseFloat(r.PostFormValue("supplier_markup"), 64); err == nil && v >= 0 {
				settings.SupplierMarkup = v
			}
			settings.ShowRealCost = r.PostFormValue("show_real_cost") == "on"

			if err := s.settings.Save(w, r, settings); err != nil {
				logger.Error("saving settings failed", slog.Any("error", err))
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			render(w, settings, true)

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
