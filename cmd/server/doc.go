// Package main is the entry point for the PanEx backend server.
//
// PanEx is a dual-pane file manager. This server performs the filesystem
// work for its desktop front end: listing, renaming, trashing, copying,
// moving, sizing and creating entries, and handing entries off to the
// system's default application or a terminal.
//
// Architecture:
//
//	Desktop UI → HTTP (/invoke/:command) or WebSocket (/ws) → service registry
//	                                                       → filesystem engine
//	                                                       → launchers
//
// Configuration:
//   - Environment variables (12-factor), optionally layered with CONFIG_FILE
//   - CLI flags (override both)
//
// Usage:
//
//	# Default: loopback only, JSON logs
//	./server -port 8000
//
//	# Development mode (colored logs)
//	./server -dev -log-level debug
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
