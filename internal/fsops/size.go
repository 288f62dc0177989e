package fsops

import (
	"io/fs"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// DirSize returns the on-disk usage of every non-directory entry below path.
// The walk is best-effort: entries that cannot be read contribute 0 and the
// walk continues. Symlinks are counted as links and never followed.
func (e *Engine) DirSize(path string) (uint64, error) {
	if !isDir(path) {
		return 0, newError(KindNotADirectory, OpSize, path, "Not a directory: %s", path)
	}

	root, err := filepath.EvalSymlinks(path)
	if err != nil {
		root = path
	}

	var total atomic.Uint64
	var skipped atomic.Int64

	// fastwalk invokes the callback from several goroutines
	conf := fastwalk.Config{Follow: false}
	err = e.walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			skipped.Add(1)
			e.logger.Debug("Skipping unreadable entry", zap.String("path", p), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			skipped.Add(1)
			e.logger.Debug("Skipping entry without metadata", zap.String("path", p), zap.Error(err))
			return nil
		}
		total.Add(DiskUsage(info))
		return nil
	})
	if err != nil {
		e.logger.Warn("Directory walk ended early", zap.String("path", path), zap.Error(err))
	}

	if n := skipped.Load(); n > 0 {
		e.logger.Debug("Directory size computed with skipped entries",
			zap.String("path", path),
			zap.Int64("skipped", n),
		)
	}
	return total.Load(), nil
}
