package launcher

import (
	"os"
	"os/exec"

	"github.com/GriffinCanCode/panex/internal/fsops"
	"go.uber.org/zap"
)

// Operation names recorded on launcher errors
const (
	OpOpen         = "open_entry"
	OpOpenTerminal = "open_in_terminal"
)

// Launcher hands entries off to external applications
type Launcher interface {
	// Open opens path with the platform's default handler
	Open(path string) error
	// OpenTerminal starts a terminal emulator in dir
	OpenTerminal(dir string) error
}

// Config holds launcher settings
type Config struct {
	// Terminals lists terminal emulator candidates in preference order.
	// Only consulted on platforms without a single system terminal.
	Terminals []string
}

// DefaultTerminals returns the built-in terminal candidate list
func DefaultTerminals() []string {
	return []string{"x-terminal-emulator", "gnome-terminal", "konsole", "xterm"}
}

// System launches processes on the host OS
type System struct {
	cfg    Config
	logger *zap.Logger
	start  func(cmd *exec.Cmd) error
}

// New creates a launcher. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger) *System {
	if len(cfg.Terminals) == 0 {
		cfg.Terminals = DefaultTerminals()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{cfg: cfg, logger: logger, start: startDetached}
}

// Open opens path with the default application. Success means the opener
// process spawned; its outcome is not observed.
func (s *System) Open(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return fsops.NewError(fsops.KindNotFound, OpOpen, path, "Path does not exist: "+path, err)
	}

	cmd := openCommand(path)
	if cmd == nil {
		return fsops.NewError(fsops.KindUnsupportedPlatform, OpOpen, path, "Opening files is not supported on this platform", nil)
	}
	if err := s.start(cmd); err != nil {
		return fsops.NewError(fsops.KindLaunchFailure, OpOpen, path, "Failed to open", err)
	}

	s.logger.Debug("Opened entry", zap.String("path", path), zap.Strings("command", cmd.Args))
	return nil
}

// OpenTerminal starts a terminal in dir. Candidates are tried in order and
// the first one that spawns wins.
func (s *System) OpenTerminal(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fsops.NewError(fsops.KindNotADirectory, OpOpenTerminal, dir, "Not a directory: "+dir, nil)
	}

	candidates := terminalCommands(dir, s.cfg.Terminals)
	if len(candidates) == 0 {
		return fsops.NewError(fsops.KindUnsupportedPlatform, OpOpenTerminal, dir, "No supported terminal emulator found", nil)
	}

	var lastErr error
	for _, cmd := range candidates {
		if lastErr = s.start(cmd); lastErr == nil {
			s.logger.Debug("Opened terminal", zap.String("dir", dir), zap.Strings("command", cmd.Args))
			return nil
		}
		s.logger.Debug("Terminal candidate failed to start",
			zap.String("command", cmd.Args[0]),
			zap.Error(lastErr),
		)
	}

	if terminalAlternatives {
		return fsops.NewError(fsops.KindUnsupportedPlatform, OpOpenTerminal, dir, "No supported terminal emulator found", nil)
	}
	return fsops.NewError(fsops.KindLaunchFailure, OpOpenTerminal, dir, "Failed to open terminal", lastErr)
}

// startDetached spawns cmd and reaps it in the background
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
