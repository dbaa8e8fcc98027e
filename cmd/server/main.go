// Package main provides the timetable LINE bot server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusbot/timetable-linebot-go/internal/bot"
	"github.com/campusbot/timetable-linebot-go/internal/config"
	"github.com/campusbot/timetable-linebot-go/internal/logger"
	"github.com/campusbot/timetable-linebot-go/internal/metrics"
	"github.com/campusbot/timetable-linebot-go/internal/modules/schedule"
	"github.com/campusbot/timetable-linebot-go/internal/sentry"
	"github.com/campusbot/timetable-linebot-go/internal/sheet"
	"github.com/campusbot/timetable-linebot-go/internal/timetable"
	"github.com/campusbot/timetable-linebot-go/internal/webhook"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// version is set at build time via -ldflags.
var version = "dev"

// appState exposes startup results to the readiness endpoint.
type appState struct {
	sourceLoaded bool
	stats        timetable.ParseStats
	weekCount    int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log.Info("Starting timetable LINE bot server")

	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: cfg.SentryEnvironment,
		Release:     version,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize error tracking")
	}
	defer sentry.Flush(2 * time.Second)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Load the timetable workbook. A missing or unreadable workbook is
	// not fatal: the bot still answers, every lookup just reports no
	// data until the file is fixed and the server restarted.
	state := &appState{}
	var grid [][]string
	if grid, err = sheet.Load(cfg.TimetablePath); err != nil {
		log.WithError(err).WithField("path", cfg.TimetablePath).
			Error("Failed to load timetable workbook; serving without data")
		m.RecordSourceLoadFailure()
	} else {
		state.sourceLoaded = true
	}

	parser := timetable.NewParser(timetable.DefaultLayout(), timetable.DefaultSpecialLabels())
	table, stats := parser.Parse(grid)
	m.RecordParse(stats.WeeksParsed, stats.DaysParsed, stats.RowsSkipped, stats.EntriesDropped)
	state.stats = stats
	state.weekCount = table.WeekCount()
	log.WithField("weeks", stats.WeeksParsed).
		WithField("days", stats.DaysParsed).
		WithField("rows_skipped", stats.RowsSkipped).
		WithField("entries_dropped", stats.EntriesDropped).
		Info("Timetable parsed")

	calendar := timetable.DefaultWeekCalendar()
	resolver := timetable.NewResolver(timetable.DefaultSlotTimes(), timetable.DefaultVenues())

	scheduleHandler := schedule.NewHandler(schedule.HandlerConfig{
		Interpreter: timetable.NewInterpreter(),
		Resolver:    resolver,
		Timetable:   table,
		Calendar:    calendar,
		Logger:      log,
		Metrics:     m,
	})

	botRegistry := bot.NewRegistry()
	botRegistry.Register(scheduleHandler)

	processor := bot.NewProcessor(bot.ProcessorConfig{
		Registry:  botRegistry,
		Logger:    log,
		Metrics:   m,
		BotConfig: &cfg.Bot,
	})

	webhookHandler, err := webhook.NewHandler(webhook.HandlerConfig{
		ChannelSecret: cfg.LineChannelSecret,
		ChannelToken:  cfg.LineChannelToken,
		BotConfig:     &cfg.Bot,
		Metrics:       m,
		Logger:        log,
		Processor:     processor,
	})
	if err != nil {
		log.WithError(err).Error("Failed to create webhook handler")
		os.Exit(1)
	}
	log.Info("Webhook handler created")

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.SentryToken != "" {
		// Repanic so gin.Recovery still writes the 500 response.
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))

	setupRoutes(router, webhookHandler, registry, state)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Let in-flight webhook events finish before exiting.
	if err := webhookHandler.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Timed out waiting for event processing")
	}

	log.Info("Server stopped")
}
