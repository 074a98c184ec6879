package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gocircle/internal/common"
	"gocircle/internal/config"
	"gocircle/internal/dbmysql"
	"gocircle/internal/di"
	"gocircle/internal/vault"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := common.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	var vaultKey []byte
	if cfg.Vault.Passphrase != "" && cfg.Vault.Salt != "" {
		vaultKey = vault.DeriveKey([]byte(cfg.Vault.Passphrase), []byte(cfg.Vault.Salt))
	} else {
		logger.Warn("no vault passphrase configured, encrypted fields are unavailable")
	}

	app, err := di.InitializeSocialApp(cfg, logger, vaultKey)
	if err != nil {
		logger.WithError(err).Fatal("initialization failed")
	}

	if err := app.DB.AutoMigrate(
		&dbmysql.Identity{},
		&dbmysql.Relationship{},
		&dbmysql.Content{},
		&dbmysql.ViewMarker{},
		&dbmysql.Report{},
	); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.EventLog.EnsureIndexes(ctx); err != nil {
		logger.WithError(err).Fatal("event log index creation failed")
	}

	// The ranking refresher runs in-process: the snapshot store is an
	// embedded badger database and admits a single process per directory.
	go app.Trending.Run(ctx)

	go runEventRetention(ctx, app, cfg, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app.Handler.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("social service listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdown(srv, app, logger)
}

// runEventRetention drops event-log day partitions older than the retention
// window once a day. Counters stay correct because aggregates are folded into
// the content rows at write time.
func runEventRetention(ctx context.Context, app *di.SocialApp, cfg *config.Config, logger *logrus.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().UTC().AddDate(0, 0, -cfg.Mongo.RetentionDays).Format("2006-01-02")
			dropped, err := app.EventLog.DropPartitionsBefore(ctx, cutoff)
			if err != nil {
				logger.WithError(err).Warn("event retention sweep failed")
				continue
			}
			logger.WithFields(logrus.Fields{
				"cutoff_day": cutoff,
				"dropped":    dropped,
			}).Info("event retention sweep complete")
		}
	}
}

func shutdown(srv *http.Server, app *di.SocialApp, logger *logrus.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown failed")
	}
	if err := app.Close(shutdownCtx); err != nil {
		logger.WithError(err).Error("closing event store failed")
	}
}
