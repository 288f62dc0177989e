package filesystem

import (
	"context"
	"path/filepath"

	"github.com/GriffinCanCode/panex/internal/fsops"
	"github.com/GriffinCanCode/panex/internal/shared/types"
)

// DirectoryOps handles navigation and directory queries
type DirectoryOps struct {
	*FilesystemOps
}

// GetTools returns directory tool definitions
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.read_dir",
			Name:        "List Directory",
			Description: "List immediate children, directories first then case-insensitive by name",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
				{Name: "pattern", Type: "string", Description: "Glob filter on entry names (e.g. *.go, {src,docs})", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "filesystem.get_home_dir",
			Name:        "Home Directory",
			Description: "Absolute path of the current user's home directory",
			Parameters:  []types.Parameter{},
			Returns:     "string",
		},
		{
			ID:          "filesystem.get_parent_dir",
			Name:        "Parent Directory",
			Description: "Absolute parent of a path; fails for a filesystem root",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.calculate_dir_size",
			Name:        "Directory Size",
			Description: "Recursive on-disk usage in bytes (unreadable entries are skipped)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "filesystem.unique_name",
			Name:        "Unique Name",
			Description: "First free name in a directory, as 'base (N).ext' when taken",
			Parameters: []types.Parameter{
				{Name: "dir", Type: "string", Description: "Directory path", Required: true},
				{Name: "name", Type: "string", Description: "Desired entry name", Required: true},
			},
			Returns: "string",
		},
	}
}

// ReadDir lists a directory
func (d *DirectoryOps) ReadDir(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	pattern, _ := stringParam(params, "pattern")

	entries, err := d.Engine.ReadDir(path, fsops.ListOptions{Pattern: pattern})
	if err != nil {
		return FailureFrom(err)
	}

	return Success(map[string]interface{}{
		"path":    path,
		"entries": entries,
		"count":   len(entries),
	})
}

// HomeDir returns the home directory
func (d *DirectoryOps) HomeDir(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	home, err := fsops.HomeDir()
	if err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{"path": home})
}

// ParentDir returns the parent of a path
func (d *DirectoryOps) ParentDir(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	parent, err := fsops.ParentDir(path)
	if err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{"path": parent})
}

// DirSize computes recursive disk usage
func (d *DirectoryOps) DirSize(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	size, err := d.Engine.DirSize(path)
	if err != nil {
		return FailureFrom(err)
	}
	if d.Metrics != nil {
		d.Metrics.ObserveDirSize(size)
	}

	return Success(map[string]interface{}{
		"path": path,
		"size": size,
	})
}

// UniqueName finds a free entry name
func (d *DirectoryOps) UniqueName(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	dir, ok := stringParam(params, "dir")
	if !ok {
		return Failure("dir parameter required")
	}
	name, ok := stringParam(params, "name")
	if !ok {
		return Failure("name parameter required")
	}

	free, err := d.Engine.UniqueName(dir, name)
	if err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{
		"name": free,
		"path": filepath.Join(dir, free),
	})
}
