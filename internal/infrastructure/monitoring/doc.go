/*
Package monitoring provides Prometheus metrics for the blueprint backend.

# Metrics

  - HTTP request count, latency and sizes (per route template)
  - Upstream (Gemini) call count by outcome, latency, response status codes
  - Blueprint requests rejected before reaching the upstream
  - Go runtime, process and uptime

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "gemini")
	// ... perform call ...
	timer.Stop(monitoring.OutcomeSuccess)
*/
package monitoring
