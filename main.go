package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mkrogh/shuttletrack/internal/attendance"
	"github.com/mkrogh/shuttletrack/internal/availability"
	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/config"
	"github.com/mkrogh/shuttletrack/internal/database"
	server "github.com/mkrogh/shuttletrack/internal/http"
	"github.com/mkrogh/shuttletrack/internal/lifecycle"
	"github.com/mkrogh/shuttletrack/internal/match"
	"github.com/mkrogh/shuttletrack/internal/metrics"
	slacknotifier "github.com/mkrogh/shuttletrack/internal/notifier/slack"
	"github.com/mkrogh/shuttletrack/internal/pubsub"
	"github.com/mkrogh/shuttletrack/internal/roster"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer dbTeardown()

	playerStore := club.New(db)
	attendanceStore := attendance.New(db)
	matchStore := match.New(db)

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slacknotifier.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	events := pubsub.New(cfg.ProjectID)

	resolver := availability.New(playerStore, attendanceStore, matchStore)
	assigner := roster.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	lifecycleSvc := lifecycle.New(matchStore, playerStore, notifier, metricsSvc, events)

	s := server.NewServer(
		playerStore,
		attendanceStore,
		matchStore,
		lifecycleSvc,
		resolver,
		assigner,
		notifier,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
