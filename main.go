package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/mardo/elpriskollen-go/config"
	"github.com/mardo/elpriskollen-go/database"
	"github.com/mardo/elpriskollen-go/elprisetjustnu"
	"github.com/mardo/elpriskollen-go/hours"
	"github.com/mardo/elpriskollen-go/logging"
	"github.com/mardo/elpriskollen-go/mqtt"
	"github.com/mardo/elpriskollen-go/nordpool"
	"github.com/mardo/elpriskollen-go/task"
	"github.com/mardo/elpriskollen-go/types"
	"github.com/mardo/elpriskollen-go/www"
)

var Version = "?.?.?"

func main() {
	defer func() {
		if err := recover(); err != nil {
			exitWithError(slog.Default(), fmt.Errorf("application panicked: %v", err))
		} else {
			slog.Default().Info("application is shutting down...")
		}
	}()

	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cnfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := hours.SetGuiTimezone(cnfg.Gui.GetTimezone()); err != nil {
		panic(fmt.Sprintf("failed to set GUI timezone: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consoleHandler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cnfg.Logging.GetConsoleLevel(),
		TimeFormat: time.RFC3339,
	})
	slog.New(consoleHandler).Debug("elpriskollen is starting...", slog.String("version", Version))

	db, err := database.New(ctx, cnfg.Database.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}
	defer db.Close()

	logger := slog.New(logging.NewMultiHandler(
		consoleHandler,
		logging.NewSQLiteHandler(db, cnfg.Logging.GetDbLevel(), cnfg.Logging.GetDbAttrsFormat())))
	slog.SetDefault(logger)

	// Now we can use the logger to log database operations into the database itself
	db.SetLogger(logger.With("module", "database"))

	providers := []types.PriceProvider{
		elprisetjustnu.New(cnfg.EnergyPrice.GetArea()), // Primary provider
		nordpool.New(cnfg.EnergyPrice.GetArea()),       // Secondary provider
	}

	var publisher *mqtt.Publisher
	if cnfg.Mqtt.Enabled {
		publisher = mqtt.New(cnfg.Mqtt, cnfg.EnergyPrice.GetArea())
		if err := publisher.Connect(); err != nil {
			logger.Error("mqtt connection error", slog.Any("error", err))
			publisher = nil
		} else {
			defer publisher.Disconnect()
		}
	}

	onUpdated := func(set types.PriceDaySet) {
		if publisher != nil {
			publisher.PublishDaySet(set, time.Now())
		}
	}

	tasks := task.NewTasks(db, providers, onUpdated, cnfg)
	if isDevMode() {
		logger.Info("dev mode, skipping task scheduling")
	} else {
		tasks.Run()
		defer tasks.Stop()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-ctx.Done():
			logger.Info("main context done")
		case sig := <-sigCh:
			logger.Info("received signal", slog.Any("signal", sig))
			cancel()
		}
	}()

	server := www.StartServer(db, cnfg)
	server.Run(ctx)
}

func isDevMode() bool {
	return strings.ToLower(os.Getenv("ELPRISKOLLEN_ENV")) == "development"
}

func exitWithError(logger *slog.Logger, err error) {
	logger.Error("application is terminating...", slog.Any("error", err))

	// Give the logger a chance to flush before exiting
	time.Sleep(250 * time.Millisecond)

	os.Exit(1)
}
