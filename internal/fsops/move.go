package fsops

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Move moves source into destDir under its own base name and returns the
// resulting path.
//
// The fast path is a single rename. When the rename fails (typically because
// source and destination are on different volumes) the entry is copied and
// the original removed. A copy failure is reported with its Copy kind and
// phase OpCopy; a removal failure after a successful copy is a CleanupFailure
// with phase OpCleanup, and the copied destination is left in place.
func (e *Engine) Move(source, destDir string) (string, error) {
	srcInfo, dest, err := e.prepareTransfer(OpMove, source, destDir)
	if err != nil {
		return "", err
	}

	if e.cfg.NoClobber {
		if destInfo, err := os.Lstat(dest); err == nil && !os.SameFile(srcInfo, destInfo) {
			return "", newError(KindAlreadyExists, OpMove, dest, "A file named '%s' already exists", filepath.Base(dest))
		}
	}

	renameErr := e.rename(source, dest)
	if renameErr == nil {
		e.logger.Debug("Moved entry", zap.String("source", source), zap.String("dest", dest))
		return dest, nil
	}

	e.logger.Debug("Rename failed, falling back to copy and delete",
		zap.String("source", source),
		zap.String("dest", dest),
		zap.Error(renameErr),
	)

	if _, err := e.Copy(source, destDir); err != nil {
		return "", err
	}

	if srcInfo.IsDir() {
		err = e.removeAll(source)
	} else {
		err = e.remove(source)
	}
	if err != nil {
		return "", wrapError(KindCleanupFailure, OpCleanup, source, "Copied but failed to remove source", err)
	}

	e.logger.Debug("Moved entry across volumes", zap.String("source", source), zap.String("dest", dest))
	return dest, nil
}
