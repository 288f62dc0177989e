package fsops

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ReadDir lists the immediate children of path: directories first, then
// case-insensitive by name. The order does not depend on OS enumeration order.
func (e *Engine) ReadDir(path string, opts ListOptions) ([]FileEntry, error) {
	if !isDir(path) {
		return nil, newError(KindNotADirectory, OpList, path, "Not a directory: %s", path)
	}
	if opts.Pattern != "" && !doublestar.ValidatePattern(opts.Pattern) {
		return nil, newError(KindInvalidArgument, OpList, path, "Invalid filter pattern: %s", opts.Pattern)
	}

	dirents, err := e.readDir(path)
	if err != nil {
		return nil, wrapError(KindReadFailure, OpList, path, "Failed to read directory", err)
	}

	entries := make([]FileEntry, 0, len(dirents))
	for _, d := range dirents {
		if opts.Pattern != "" {
			// pattern validity was checked above
			if ok, _ := doublestar.Match(opts.Pattern, d.Name()); !ok {
				continue
			}
		}

		childPath := filepath.Join(path, d.Name())
		info, err := d.Info()
		if err != nil {
			return nil, wrapError(KindReadFailure, OpList, childPath, "Failed to read metadata", err)
		}
		entries = append(entries, newFileEntry(childPath, info))
	}

	SortEntries(entries)
	return entries, nil
}

// SortEntries orders entries directories-first, then by case-folded name,
// falling back to the exact name so that the order is total.
func SortEntries(entries []FileEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return lessEntry(entries[i], entries[j])
	})
}

func lessEntry(a, b FileEntry) bool {
	if a.IsDir != b.IsDir {
		return a.IsDir
	}
	la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if la != lb {
		return la < lb
	}
	return a.Name < b.Name
}
