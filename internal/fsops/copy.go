package fsops

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Copy copies source into destDir under its own base name and returns the
// resulting path. Directories are mirrored depth-first; symlinks are recreated
// rather than followed. An existing entry of the same name is overwritten
// unless the engine runs with NoClobber; a symlink found at a destination path
// is replaced, never written through. Special files fail with CopyFailure.
// The first failure aborts the copy and leaves whatever was already written
// in place.
func (e *Engine) Copy(source, destDir string) (string, error) {
	srcInfo, dest, err := e.prepareTransfer(OpCopy, source, destDir)
	if err != nil {
		return "", err
	}
	if err := e.guardCopyTarget(source, dest, srcInfo); err != nil {
		return "", err
	}

	if err := e.copyEntry(source, dest, srcInfo); err != nil {
		return "", err
	}

	e.logger.Debug("Copied entry", zap.String("source", source), zap.String("dest", dest))
	return dest, nil
}

// prepareTransfer runs the checks shared by Copy and Move and resolves the
// destination path.
func (e *Engine) prepareTransfer(op, source, destDir string) (fs.FileInfo, string, error) {
	srcInfo, err := lstatExisting(op, source, "Source")
	if err != nil {
		return nil, "", err
	}
	if !isDir(destDir) {
		return nil, "", newError(KindNotADirectory, op, destDir, "Destination is not a directory: %s", destDir)
	}
	name, ok := baseName(source)
	if !ok {
		return nil, "", newError(KindNoFileName, op, source, "Cannot determine file name")
	}
	return srcInfo, filepath.Join(destDir, name), nil
}

// guardCopyTarget rejects copies that would destroy their own source: a file
// copied onto itself is truncated, and a directory copied into its own
// subtree never terminates.
func (e *Engine) guardCopyTarget(source, dest string, srcInfo fs.FileInfo) error {
	if destInfo, err := os.Lstat(dest); err == nil {
		if os.SameFile(srcInfo, destInfo) {
			return newError(KindCopyFailure, OpCopy, dest, "Source and destination are the same: %s", dest)
		}
		if e.cfg.NoClobber {
			return newError(KindAlreadyExists, OpCopy, dest, "A file named '%s' already exists", filepath.Base(dest))
		}
	}

	if srcInfo.IsDir() && within(source, filepath.Dir(dest)) {
		return newError(KindCopyFailure, OpCopy, dest, "Cannot copy a folder into itself: %s", source)
	}
	return nil
}

// within reports whether dir is root or lies below it, comparing resolved paths
func within(root, dir string) bool {
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		realRoot = root
	}
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		realDir = dir
	}
	absRoot, err1 := filepath.Abs(realRoot)
	absDir, err2 := filepath.Abs(realDir)
	if err1 != nil || err2 != nil {
		return false
	}

	rel, err := filepath.Rel(absRoot, absDir)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (e *Engine) copyEntry(src, dst string, info fs.FileInfo) error {
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return copySymlink(src, dst)
	case info.IsDir():
		return e.copyDir(src, dst)
	case info.Mode().IsRegular():
		return copyFile(src, dst, info)
	default:
		// FIFOs, sockets and devices would block or read without end
		return newError(KindCopyFailure, OpCopy, src, "Cannot copy special file: %s", src)
	}
}

// unlinkExisting removes a symlink sitting at dst so the copy replaces the
// link rather than writing to its target.
func unlinkExisting(dst string) error {
	info, err := os.Lstat(dst)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return nil
	}
	if err := os.Remove(dst); err != nil {
		return wrapError(KindCopyFailure, OpCopy, dst, "Failed to replace existing link", err)
	}
	return nil
}

func (e *Engine) copyDir(src, dst string) error {
	if err := unlinkExisting(dst); err != nil {
		return err
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return wrapError(KindCopyFailure, OpCopy, dst, "Failed to create directory", err)
	}

	children, err := e.readDir(src)
	if err != nil {
		return wrapError(KindCopyFailure, OpCopy, src, "Failed to read source directory", err)
	}

	for _, child := range children {
		childSrc := filepath.Join(src, child.Name())
		info, err := child.Info()
		if err != nil {
			return wrapError(KindCopyFailure, OpCopy, childSrc, "Failed to read entry", err)
		}
		if err := e.copyEntry(childSrc, filepath.Join(dst, child.Name()), info); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies the bytes of src to dst, truncating an existing regular
// dst, and applies the source permission bits.
func copyFile(src, dst string, info fs.FileInfo) error {
	if err := unlinkExisting(dst); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return wrapError(KindCopyFailure, OpCopy, src, "Failed to copy file", err)
	}
	defer in.Close()

	perm := info.Mode().Perm()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return wrapError(KindCopyFailure, OpCopy, dst, "Failed to copy file", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return wrapError(KindCopyFailure, OpCopy, dst, "Failed to copy file", err)
	}
	if err := out.Chmod(perm); err != nil {
		out.Close()
		return wrapError(KindCopyFailure, OpCopy, dst, "Failed to copy file", err)
	}
	if err := out.Close(); err != nil {
		return wrapError(KindCopyFailure, OpCopy, dst, "Failed to copy file", err)
	}
	return nil
}

// copySymlink recreates the link at dst with the same target text
func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return wrapError(KindCopyFailure, OpCopy, src, "Failed to read link", err)
	}
	if exists(dst) {
		if err := os.Remove(dst); err != nil {
			return wrapError(KindCopyFailure, OpCopy, dst, "Failed to replace existing entry", err)
		}
	}
	if err := os.Symlink(target, dst); err != nil {
		return wrapError(KindCopyFailure, OpCopy, dst, "Failed to copy link", err)
	}
	return nil
}
