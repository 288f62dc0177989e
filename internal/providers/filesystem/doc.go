// Package filesystem exposes the file manager operations as the "filesystem" service.
//
// This package is organized into tool groups:
//   - directory: listing, home/parent navigation, recursive size, unique names
//   - operations: rename, delete (trash or permanent), copy, move, create file/folder
//   - shell: open with the default application, open a terminal
//
// All tools:
//   - Delegate to fsops.Engine or launcher.Launcher
//   - Return structured results; failures carry the engine's message and an error_kind
//   - Accept the desktop UI's camelCase aliases (newName, destDir)
//   - Record per-tool Prometheus metrics when a collector is configured
//
// Invoke command names (read_dir, copy_entry, ...) resolve to tool IDs via ToolForCommand.
//
// Example Usage:
//
//	provider := filesystem.NewProvider(engine, launcher, metrics, logger)
//	result, err := provider.Execute(ctx, "filesystem.read_dir",
//	    map[string]interface{}{"path": "/home/me"}, nil)
package filesystem
