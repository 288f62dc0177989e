// Package middleware provides the Gin middleware stack in front of the API.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing with configurable origins
//   - RateLimit: Per-IP token bucket rate limiting with idle client eviction
//   - GlobalRateLimit: One token bucket shared by all clients
//   - RequestID: X-Request-ID propagation, generating req_ ULIDs when absent
//   - AccessLog: One zap line per request, leveled by status code
//
// Rejected requests use the same JSON shape as failed tool results:
// {"success": false, "error": "...", "error_kind": "..."}.
//
// Example Usage:
//
//	router.Use(middleware.RequestID(), middleware.AccessLog(logger))
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
