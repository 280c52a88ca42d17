package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fleetsense/fleetsense/internal/alert"
	"github.com/fleetsense/fleetsense/internal/api"
	"github.com/fleetsense/fleetsense/internal/config"
	"github.com/fleetsense/fleetsense/internal/monitor"
	"github.com/fleetsense/fleetsense/internal/notify"
	"github.com/fleetsense/fleetsense/internal/sensor"
	"github.com/fleetsense/fleetsense/internal/ws"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.System.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("fleetsense starting",
		"config", *configPath,
		"name", cfg.System.Name,
		"check_interval", cfg.System.CheckInterval,
		"max_alerts_per_hour", cfg.System.MaxAlertsPerHour,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Build the manager from config. A bad sensor or notifier entry is
	// skipped with a log line rather than aborting startup.
	manager := alert.NewManager(cfg.System.MaxAlertsPerHour)
	for _, sc := range cfg.Sensors {
		s, err := sensor.New(sc)
		if err != nil {
			slog.Error("skipping sensor — invalid configuration", "sensor", sc.ID, "err", err)
			continue
		}
		if err := manager.AddSensor(s); err != nil {
			slog.Error("skipping sensor — registration failed", "sensor", sc.ID, "err", err)
		}
	}
	for _, nc := range cfg.Notifiers {
		n, err := notify.New(nc)
		if err != nil {
			slog.Error("skipping notifier — invalid configuration", "type", nc.Type, "err", err)
			continue
		}
		manager.AddNotifier(n)
	}

	if len(manager.Sensors()) == 0 {
		slog.Warn("no sensors configured — system will idle")
	}

	system := monitor.New(cfg.System.Name, version, manager)
	panel := monitor.NewPanel(system)

	// Watch config file for hot-reload (logs only in this phase).
	go func() {
		if err := config.Watch(ctx, *configPath, func(updated *config.Config) {
			slog.Info("config hot-reloaded",
				"sensors", len(updated.Sensors), "notifiers", len(updated.Notifiers))
		}); err != nil {
			slog.Error("config watcher stopped", "err", err)
		}
	}()

	// WebSocket hub — pushes panel status to dashboard clients after each cycle.
	hub := ws.New(panel)
	go hub.Run(ctx)

	// Read-only control-panel HTTP surface.
	apiHandler := api.New(panel)
	httpMux := http.NewServeMux()
	httpMux.Handle("/api/", apiHandler)
	httpMux.Handle("/metrics", apiHandler)
	httpMux.Handle("/ws/stream", hub)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.System.HTTPPort),
		Handler: httpMux,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.System.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
		}
	}()

	// Monitoring loop: one synchronous cycle per tick.
	ticker := time.NewTicker(cfg.System.CheckInterval)
	defer ticker.Stop()

	system.RunCycle()
	hub.CycleCompleted()
	for {
		select {
		case <-ctx.Done():
			slog.Info("fleetsense shutting down")
			httpSrv.Shutdown(context.Background()) //nolint:errcheck
			fmt.Println(panel.Report())
			return
		case <-ticker.C:
			system.RunCycle()
			hub.CycleCompleted()
		}
	}
}
