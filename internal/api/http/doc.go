// Package http provides the REST endpoints of the PanEx backend.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/execute
//   - Invoke: /invoke/:command, addressed by front-end command name (read_dir, copy_entry, ...)
//   - Logs: /logs, front-end log batches forwarded to the server log
//   - Metrics: /metrics in the Prometheus exposition format
//
// Tool failures are not HTTP errors: they return 200 with
// {"success": false, "error": "...", "error_kind": "..."}. Malformed requests
// and unknown tools or commands use 4xx with the same body shape.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, filesystem.ToolForCommand, http.Options{Metrics: metrics})
//	handlers.RegisterRoutes(router)
package http
