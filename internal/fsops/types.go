package fsops

import (
	"io/fs"
	"time"
)

// FileEntry describes one direct child of a listed directory
type FileEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	IsDir    bool   `json:"is_dir"`
	Size     uint64 `json:"size"`
	Modified uint64 `json:"modified"`
}

// ListOptions narrows a directory listing
type ListOptions struct {
	// Pattern is a doublestar glob matched against entry names; empty keeps all entries
	Pattern string
}

// newFileEntry converts lstat metadata into a FileEntry.
// Directories report size 0 because the lister does not recurse.
func newFileEntry(path string, info fs.FileInfo) FileEntry {
	entry := FileEntry{
		Name:     info.Name(),
		Path:     path,
		IsDir:    info.IsDir(),
		Modified: unixSeconds(info.ModTime()),
	}
	if !entry.IsDir {
		entry.Size = DiskUsage(info)
	}
	return entry
}

// unixSeconds returns t as seconds since the epoch, 0 for zero or pre-epoch times
func unixSeconds(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	sec := t.Unix()
	if sec < 0 {
		return 0
	}
	return uint64(sec)
}
