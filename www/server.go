package www

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/mardo/elpriskollen-go/config"
	"github.com/mardo/elpriskollen-go/convert"
	"github.com/mardo/elpriskollen-go/database"
	"github.com/mardo/elpriskollen-go/stats"
)

type Server struct {
	logger   *slog.Logger
	config   config.AppConfigApi
	db       *database.Database
	hub      *Hub
	tm       *TemplateManager
	settings *SettingsStore
	area     string
}

//go:embed static
var embeddedStaticDir embed.FS

func StartServer(db *database.Database, cnfg *config.AppConfig) *Server {
	logger := slog.Default().With("module", "www")
	tm, err := NewTemplateManager(logger, cnfg.Api.WwwDir)
	if err != nil {
		logger.Error("template manager initialization error", slog.Any("error", err))
	}

	s := &Server{
		logger:   logger,
		config:   cnfg.Api,
		db:       db,
		hub:      NewHub(logger),
		tm:       tm,
		settings: NewSettingsStore(cnfg.Api.SessionKey, cnfg.Cost.Settings()),
		area:     cnfg.EnergyPrice.GetArea(),
	}

	logReqMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.logger.Debug("http request",
				slog.String("method", r.Method),
				slog.String("url", r.URL.String()),
				slog.String("remoteAddr", r.RemoteAddr))
			next.ServeHTTP(w, r)
		})
	}

	http.Handle("/static/", http.StripPrefix("/static/", staticFilesHandler(cnfg.Api.WwwDir)))

	http.Handle("/", logReqMW(NewDashboardHandler(
		logger.With(slog.String("handler", "dashboard")), s)))

	http.Handle("/chart", logReqMW(NewChartHandler(
		logger.With(slog.String("handler", "chart")), s)))

	http.Handle("/windows", logReqMW(NewWindowsHandler(
		logger.With(slog.String("handler", "windows")), s)))

	http.Handle("/range", logReqMW(NewRangeHandler(
		logger.With(slog.String("handler", "range")), s)))

	http.Handle("/settings", logReqMW(NewSettingsHandler(
		logger.With(slog.String("handler", "settings")), s)))

	http.Handle("/log", logReqMW(NewLogHandler(
		logger.With(slog.String("handler", "log")), s)))

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		name := r.Header.Get("User-Agent")
		client, err := NewClient(s.hub, w, r, name)
		if err != nil {
			s.logger.Error("new websocket client failed", slog.Any("error", err))
			return
		}
		s.hub.Register <- client
		go client.WritePump()
	})

	return s
}

func (s *Server) Run(ctx context.Context) {
	s.logger.Info("starting server...", "port", s.config.Port)
	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", s.config.Address, s.config.Port),
	}

	go s.hub.Run(ctx)

	srvErrors := make(chan error, 1)
	go func() {
		srvErrors <- srv.ListenAndServe()
	}()

	ticker := time.NewTicker(time.Second * 30)
	defer ticker.Stop()

	// Keeping state to avoid spamming logs
	tickerErrorState := false

	for {
		select {
		case err := <-srvErrors:
			if err != nil {
				s.logger.Error("server error", slog.Any("error", err))
			}

		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("server shutdown failed", slog.Any("error", err))
			}
			return

		case <-ticker.C:
			if s.hub.ClientCount() == 0 {
				continue
			}

			buf, err := s.tickerFragment(ctx)
			if err != nil {
				if !tickerErrorState {
					tickerErrorState = true
					s.logger.Warn("price ticker update failed", slog.Any("error", err))
				}
				continue
			}
			tickerErrorState = false

			s.hub.Broadcast <- buf
		}
	}
}

// tickerFragment renders the live price fragment pushed to connected
// dashboards. It uses the configured default settings since there is
// no per-visitor session on a broadcast.
func (s *Server) tickerFragment(ctx context.Context) ([]byte, error) {
	now := time.Now()
	set, _ := s.currentDaySet(ctx, now, s.settings.defaults)
	hour := currentStockholmHour(now)

	p, ok := stats.PriceAt(set.Today, hour).Get()
	if !ok {
		return nil, fmt.Errorf("no price for hour %d", hour)
	}

	data := struct {
		Label  string
		Price  int
		SEK    float64
		Status stats.Status
	}{
		Label:  fmt.Sprintf("%02d:00", hour),
		Price:  p.Price,
		SEK:    convert.OreToSek(p.Price),
		Status: stats.HourStatus(set.Today, hour),
	}

	buf, err := s.tm.Execute("price_ticker.html", data)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func staticFilesHandler(extDir *string) http.Handler {
	if extDir != nil && *extDir != "" {
		staticDir := path.Join(*extDir, "static")
		if _, err := os.Stat(staticDir); err == nil {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	fsys, err := fs.Sub(embeddedStaticDir, "static")
	if err != nil {
		log.Panic(err)
	}
	return http.FileServer(http.FS(fsys))
}
