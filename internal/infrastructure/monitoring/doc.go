/*
Package monitoring provides Prometheus metrics for the PanEx server.

# Overview

Metrics are registered on a private registry rather than the global default,
so several servers (or tests) can live in one process.

# Features

- HTTP request metrics (count, latency) labelled by route template
- Filesystem operation metrics (count, latency, failures by error kind)
- Directory size distribution
- WebSocket connection and message metrics
- Uptime and Go runtime collectors

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "filesystem.copy_entry")
	// ... perform operation ...
	timer.Stop("")
*/
package monitoring
