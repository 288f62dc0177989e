package fsops

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the current user's home directory as an absolute path
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", wrapError(KindNotFound, OpHome, "", "Could not determine home directory", err)
	}
	abs, err := filepath.Abs(home)
	if err != nil {
		return "", wrapError(KindNotFound, OpHome, home, "Could not determine home directory", err)
	}
	return abs, nil
}

// ParentDir returns the absolute parent of path. The root has no parent.
func ParentDir(path string) (string, error) {
	if path == "" {
		return "", newError(KindNoParent, OpParent, path, "No parent directory")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", wrapError(KindNoParent, OpParent, path, "No parent directory", err)
	}
	parent, ok := parentOf(abs)
	if !ok {
		return "", newError(KindNoParent, OpParent, path, "No parent directory")
	}
	return parent, nil
}

// parentOf returns the directory containing path; false for a filesystem root
func parentOf(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return "", false
	}
	return parent, true
}

// baseName extracts the final path element; false for roots and "."/".." endings
func baseName(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	base := filepath.Base(filepath.Clean(path))
	if base == "." || base == ".." || strings.ContainsAny(base, separators) {
		return "", false
	}
	return base, true
}

// separators holds every character that splits path elements on this platform
const separators = "/" + string(filepath.Separator)

// validateName rejects names that would escape or alias the parent directory
func validateName(op, name string) error {
	switch {
	case name == "":
		return newError(KindInvalidArgument, op, name, "Name cannot be empty")
	case name == "." || name == "..":
		return newError(KindInvalidArgument, op, name, "Invalid name: %s", name)
	case strings.ContainsAny(name, separators):
		return newError(KindInvalidArgument, op, name, "Name cannot contain a path separator: %s", name)
	case strings.ContainsRune(name, 0):
		return newError(KindInvalidArgument, op, name, "Name cannot contain a NUL byte")
	}
	return nil
}

// lstatExisting returns metadata for path without following a final symlink,
// or a NotFound error naming what was missing ("Path", "Source").
func lstatExisting(op, path, what string) (fs.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, wrapError(KindNotFound, op, path, fmt.Sprintf("%s does not exist: %s", what, path), err)
	}
	return info, nil
}

// exists reports whether anything, including a dangling symlink, is at path
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// isDir reports whether path resolves, following symlinks, to a directory
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// logicalSize returns the apparent length, clamped at zero
func logicalSize(info fs.FileInfo) uint64 {
	if size := info.Size(); size > 0 {
		return uint64(size)
	}
	return 0
}
