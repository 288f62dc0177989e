// Package fsops is the filesystem operations engine behind the PanEx file manager.
//
// The engine is organized by responsibility:
//   - list: Directory Lister (immediate children, directories first, case-insensitive)
//   - mutate: rename, create file/folder, delete (trash or permanent), unique names
//   - copy: recursive depth-first copy into a destination directory
//   - move: same-volume rename with cross-volume copy+delete fallback
//   - size: best-effort recursive disk usage
//   - diskusage_*: per-platform on-disk usage accessor
//
// All operations:
//   - Are synchronous and keep no state between calls
//   - Treat the live filesystem as the only source of truth
//   - Return *Error values carrying a Kind and a user-facing message
//
// Example Usage:
//
//	engine := fsops.New(fsops.Config{}, fsops.WithLogger(logger.Logger))
//	entries, err := engine.ReadDir("/home/me", fsops.ListOptions{})
//	if fsops.IsKind(err, fsops.KindNotADirectory) {
//	    // ...
//	}
package fsops
