package filesystem

import (
	"context"

	"github.com/GriffinCanCode/panex/internal/shared/types"
)

// ShellOps hands entries off to external applications
type ShellOps struct {
	*FilesystemOps
}

// GetTools returns launcher tool definitions
func (s *ShellOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.open_entry",
			Name:        "Open",
			Description: "Open an entry with the system default application",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Entry path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.open_in_terminal",
			Name:        "Open in Terminal",
			Description: "Start a terminal emulator in a directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Open launches the default application for an entry
func (s *ShellOps) Open(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	if err := s.Launcher.Open(path); err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{"opened": path})
}

// OpenTerminal launches a terminal in a directory
func (s *ShellOps) OpenTerminal(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	if err := s.Launcher.OpenTerminal(path); err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{"opened": path})
}
