package fsops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Rename renames path to newName inside its current parent directory.
// An existing entry with the new name is never overwritten.
func (e *Engine) Rename(path, newName string) error {
	srcInfo, err := lstatExisting(OpRename, path, "Path")
	if err != nil {
		return err
	}

	parent, ok := parentOf(path)
	if !ok {
		return newError(KindNoParent, OpRename, path, "Cannot determine parent directory")
	}
	if err := validateName(OpRename, newName); err != nil {
		return err
	}

	dest := filepath.Join(parent, newName)
	if destInfo, err := os.Lstat(dest); err == nil {
		// A case-only rename on a case-insensitive volume finds the source itself
		caseOnly := os.SameFile(srcInfo, destInfo) &&
			filepath.Base(filepath.Clean(path)) != newName &&
			strings.EqualFold(filepath.Base(filepath.Clean(path)), newName)
		if !caseOnly {
			return newError(KindAlreadyExists, OpRename, dest, "A file named '%s' already exists", newName)
		}
	}

	if err := e.rename(path, dest); err != nil {
		return wrapError(KindRenameFailure, OpRename, path, "Failed to rename", err)
	}

	e.logger.Debug("Renamed entry", zap.String("from", path), zap.String("to", dest))
	return nil
}

// CreateFile creates an empty file called name in dir
func (e *Engine) CreateFile(dir, name string) error {
	if err := validateName(OpCreateFile, name); err != nil {
		return err
	}
	target := filepath.Join(dir, name)
	if exists(target) {
		return newError(KindAlreadyExists, OpCreateFile, target, "A file named '%s' already exists", name)
	}

	// O_EXCL keeps a concurrently created file from being truncated
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return newError(KindAlreadyExists, OpCreateFile, target, "A file named '%s' already exists", name)
		}
		return wrapError(KindCreateFailure, OpCreateFile, target, "Failed to create file", err)
	}
	if err := f.Close(); err != nil {
		return wrapError(KindCreateFailure, OpCreateFile, target, "Failed to create file", err)
	}

	e.logger.Debug("Created file", zap.String("path", target))
	return nil
}

// CreateFolder creates an empty directory called name in dir
func (e *Engine) CreateFolder(dir, name string) error {
	if err := validateName(OpCreateFolder, name); err != nil {
		return err
	}
	target := filepath.Join(dir, name)
	if exists(target) {
		return newError(KindAlreadyExists, OpCreateFolder, target, "A folder named '%s' already exists", name)
	}

	if err := os.Mkdir(target, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return newError(KindAlreadyExists, OpCreateFolder, target, "A folder named '%s' already exists", name)
		}
		return wrapError(KindCreateFailure, OpCreateFolder, target, "Failed to create folder", err)
	}

	e.logger.Debug("Created folder", zap.String("path", target))
	return nil
}

// Delete removes path. With permanent unset the entry goes to the OS trash;
// otherwise files are unlinked and directories removed recursively. A failure
// anywhere inside a recursive removal fails the whole call.
func (e *Engine) Delete(path string, permanent bool) error {
	info, err := lstatExisting(OpDelete, path, "Path")
	if err != nil {
		return err
	}

	if !permanent {
		if err := e.trash.Trash(path); err != nil {
			return wrapError(KindDeleteFailure, OpDelete, path, "Failed to move to trash", err)
		}
		e.logger.Debug("Moved entry to trash", zap.String("path", path))
		return nil
	}

	if info.IsDir() {
		err = e.removeAll(path)
	} else {
		err = e.remove(path)
	}
	if err != nil {
		return wrapError(KindDeleteFailure, OpDelete, path, "Failed to delete", err)
	}

	e.logger.Debug("Deleted entry", zap.String("path", path), zap.Bool("dir", info.IsDir()))
	return nil
}

// UniqueName returns name when dir has no entry by that name, otherwise the
// first free "base (N)ext" candidate with N counting from 2.
func (e *Engine) UniqueName(dir, name string) (string, error) {
	if err := validateName(OpUniqueName, name); err != nil {
		return "", err
	}
	if !isDir(dir) {
		return "", newError(KindNotADirectory, OpUniqueName, dir, "Not a directory: %s", dir)
	}
	if !exists(filepath.Join(dir, name)) {
		return name, nil
	}

	base, ext := splitExt(name)
	for n := 2; ; n++ {
		candidate := base + " (" + strconv.Itoa(n) + ")" + ext
		if !exists(filepath.Join(dir, candidate)) {
			return candidate, nil
		}
	}
}

// splitExt splits at the last dot; a leading dot belongs to the base
func splitExt(name string) (string, string) {
	dot := strings.LastIndex(name, ".")
	if dot <= 0 {
		return name, ""
	}
	return name[:dot], name[dot:]
}
