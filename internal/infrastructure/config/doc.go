// Package config provides 12-factor configuration management for the PanEx server.
//
// Configuration is loaded from environment variables with defaults, then an
// optional YAML or TOML file (CONFIG_FILE) is layered on top. CLI flags in
// cmd/server override both.
//
// Configuration Sections:
//   - Server: listen address, response compression and CORS origins
//   - Logging: log level and output format
//   - RateLimit: per-IP and global rate limiting
//   - Engine: filesystem engine switches (no-clobber copies/moves)
//   - Launcher: terminal emulator candidates
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s\n", cfg.Addr())
//
// Environment Variables:
//   - PORT, HOST, HTTP_COMPRESSION, CORS_ORIGINS
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - ENGINE_NO_CLOBBER, TERMINALS, CONFIG_FILE
package config
