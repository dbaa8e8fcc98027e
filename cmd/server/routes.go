package main

import (
	"net/http"

	"github.com/campusbot/timetable-linebot-go/internal/webhook"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all HTTP routes.
func setupRoutes(router *gin.Engine, webhookHandler *webhook.Handler, registry *prometheus.Registry, state *appState) {
	rootHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "timetable-linebot",
			"version": version,
		})
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Liveness probe. Only confirms the process is serving; never
	// checks dependencies.
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness probe. The bot serves even without timetable data (it
	// answers every query with "no data"), so a failed source load is
	// reported but does not make the service unready.
	readyHandler := func(c *gin.Context) {
		source := "loaded"
		if !state.sourceLoaded {
			source = "failed"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
			"source": source,
			"timetable": gin.H{
				"weeks":           state.weekCount,
				"days":            state.stats.DaysParsed,
				"rows_skipped":    state.stats.RowsSkipped,
				"entries_dropped": state.stats.EntriesDropped,
			},
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// LINE webhook callback endpoint
	router.POST("/callback", webhookHandler.Handle)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
