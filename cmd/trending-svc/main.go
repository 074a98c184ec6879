package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gocircle/internal/common"
	"gocircle/internal/config"
	"gocircle/internal/di"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// Standalone ranking refresher for deployments that keep the pipeline off the
// serving host. TRENDING_SNAPSHOT_DIR must not be shared with a running
// social-svc: the snapshot store admits one process per directory.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := common.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	app, err := di.InitializeTrendingApp(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("initialization failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go app.Service.Run(ctx)

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/trending", func(w http.ResponseWriter, req *http.Request) {
		items, err := app.Service.Current(req.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(items)
	}).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.TrendingPort,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.WithField("port", cfg.Server.TrendingPort).Info("trending refresher listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown failed")
	}
	if err := app.Close(); err != nil {
		logger.WithError(err).Error("closing snapshot store failed")
	}
}
