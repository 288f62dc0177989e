package fsops

import (
	"io/fs"
	"os"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// Operation names recorded on errors. Move reports the failed phase as
// OpCopy or OpCleanup.
const (
	OpList         = "read_dir"
	OpRename       = "rename"
	OpCreateFile   = "create_file"
	OpCreateFolder = "create_folder"
	OpDelete       = "delete"
	OpCopy         = "copy"
	OpMove         = "move"
	OpCleanup      = "cleanup"
	OpSize         = "dir_size"
	OpHome         = "home_dir"
	OpParent       = "parent_dir"
	OpUniqueName   = "unique_name"
)

// Config holds engine behaviour switches
type Config struct {
	// NoClobber makes Copy and Move fail with AlreadyExists instead of
	// overwriting an entry of the same name in the destination directory.
	NoClobber bool
}

// Trasher moves an entry to the OS trash / recycle bin
type Trasher interface {
	Trash(path string) error
}

// Engine performs synchronous filesystem operations against the live filesystem.
// It keeps no state between calls and is safe for concurrent use; concurrent
// calls touching overlapping trees are not coordinated.
type Engine struct {
	cfg    Config
	logger *zap.Logger
	trash  Trasher

	// OS primitives, replaced in tests to simulate cross-volume moves,
	// unreadable directories and removal failures
	rename    func(oldpath, newpath string) error
	remove    func(name string) error
	removeAll func(path string) error
	readDir   func(name string) ([]fs.DirEntry, error)
	walk      func(conf *fastwalk.Config, root string, fn fs.WalkDirFunc) error
}

// Option customises an Engine
type Option func(*Engine)

// WithLogger sets the logger used for debug diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTrasher replaces the OS trash implementation
func WithTrasher(t Trasher) Option {
	return func(e *Engine) {
		if t != nil {
			e.trash = t
		}
	}
}

// New creates an engine
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		logger:    zap.NewNop(),
		trash:     SystemTrash{},
		rename:    os.Rename,
		remove:    os.Remove,
		removeAll: os.RemoveAll,
		readDir:   os.ReadDir,
		walk:      fastwalk.Walk,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.cfg
}
