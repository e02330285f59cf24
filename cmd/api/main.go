package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vosbek/openhands/internal/adapters/httpapi"
	"github.com/vosbek/openhands/internal/app/timestamp"
	platformclock "github.com/vosbek/openhands/internal/platform/clock"
	"github.com/vosbek/openhands/internal/platform/config"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetLevel(logLevelFromEnv())

	cfg, err := config.LoadServerConfigFromEnv()
	if err != nil {
		log.WithError(err).Fatal("invalid server config")
	}

	instanceID := uuid.NewString()
	clk := platformclock.NewSystemClock()
	svc := timestamp.NewService(clk, cfg.Location)

	handler := httpapi.NewRouterWithOptions(
		httpapi.NewServer(svc),
		httpapi.RouterOptions{Logger: log, InstanceID: instanceID},
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(logrus.Fields{
			"addr":      cfg.Addr(),
			"time_zone": cfg.TimeZone,
			"instance":  instanceID,
		}).Info("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func logLevelFromEnv() logrus.Level {
	v := os.Getenv("LOG_LEVEL")
	if v == "" {
		return logrus.InfoLevel
	}
	lvl, err := logrus.ParseLevel(v)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
