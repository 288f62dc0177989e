// Package server assembles the PanEx backend: logger, metrics, filesystem
// engine, launchers, service registry, Gin router and the net/http server.
//
// Middleware order: Recovery, RequestID, AccessLog, metrics, CORS, then the
// optional per-IP rate limit. Responses are gzip-compressed when
// Server.Compression is on; WebSocket upgrades skip compression.
//
// Example Usage:
//
//	srv, err := server.NewServer(config.LoadOrDefault(), "1.0.0")
//	go srv.Run()
//	defer srv.Shutdown(ctx)
package server
