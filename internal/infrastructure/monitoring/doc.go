/*
Package monitoring provides Prometheus metrics collection for the
blueprint service.

# Overview

Tracks HTTP traffic plus the domain events that matter here: which mode
produced each blueprint, how often remote candidates are attempted and
fail, and how often the composer falls back to the template.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
