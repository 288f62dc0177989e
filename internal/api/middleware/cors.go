package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig defines CORS configuration options.
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	CustomSchemas    []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// DefaultOrigins returns the origins the desktop UI is served from: the
// bundled webview on macOS/Linux, the bundled webview on Windows, and the
// Vite dev server.
func DefaultOrigins() []string {
	return []string{"tauri://localhost", "http://tauri.localhost", "http://localhost:1420"}
}

// DefaultCORSConfig allows only the desktop UI origins
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: DefaultOrigins(),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Accept",
			"Origin",
			"Cache-Control",
			"X-Requested-With",
			RequestIDHeader,
		},
		ExposeHeaders: []string{RequestIDHeader},
		CustomSchemas: []string{"tauri://"},
		MaxAge:        12 * time.Hour,
	}
}

// CORS creates a CORS middleware with the provided configuration.
// Requests carrying a disallowed Origin are aborted with 403.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		CustomSchemas:    cfg.CustomSchemas,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

// OriginChecker reports whether an Origin header value is in origins.
// An empty origin (non-browser client) passes; "*" admits everything.
func OriginChecker(origins []string) func(origin string) bool {
	allowed := make(map[string]struct{}, len(origins))
	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[strings.ToLower(strings.TrimSuffix(o, "/"))] = struct{}{}
	}

	return func(origin string) bool {
		if origin == "" || allowAll {
			return true
		}
		_, ok := allowed[strings.ToLower(origin)]
		return ok
	}
}
