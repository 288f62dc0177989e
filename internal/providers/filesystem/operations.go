package filesystem

import (
	"context"
	"path/filepath"

	"github.com/GriffinCanCode/panex/internal/shared/types"
)

// OperationsOps handles entry mutations
type OperationsOps struct {
	*FilesystemOps
}

// GetTools returns mutation tool definitions
func (o *OperationsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.rename_entry",
			Name:        "Rename",
			Description: "Rename an entry within its directory; never overwrites",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Entry path", Required: true},
				{Name: "new_name", Type: "string", Description: "New name (alias newName)", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.delete_entry",
			Name:        "Delete",
			Description: "Move an entry to the trash, or remove it permanently",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Entry path", Required: true},
				{Name: "permanent", Type: "boolean", Description: "Bypass the trash", Required: false},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.copy_entry",
			Name:        "Copy",
			Description: "Recursively copy an entry into a directory",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Source path", Required: true},
				{Name: "dest_dir", Type: "string", Description: "Destination directory (alias destDir)", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.move_entry",
			Name:        "Move",
			Description: "Move an entry into a directory, copying across volumes",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Source path", Required: true},
				{Name: "dest_dir", Type: "string", Description: "Destination directory (alias destDir)", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.create_file",
			Name:        "Create File",
			Description: "Create an empty file; fails if the name is taken",
			Parameters: []types.Parameter{
				{Name: "dir", Type: "string", Description: "Parent directory", Required: true},
				{Name: "name", Type: "string", Description: "File name", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.create_folder",
			Name:        "Create Folder",
			Description: "Create an empty directory; fails if the name is taken",
			Parameters: []types.Parameter{
				{Name: "dir", Type: "string", Description: "Parent directory", Required: true},
				{Name: "name", Type: "string", Description: "Folder name", Required: true},
			},
			Returns: "string",
		},
	}
}

// Rename renames an entry in place
func (o *OperationsOps) Rename(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	newName, ok := stringParam(params, "new_name", "newName")
	if !ok {
		return Failure("new_name parameter required")
	}

	if err := o.Engine.Rename(path, newName); err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{
		"path": filepath.Join(filepath.Dir(filepath.Clean(path)), newName),
	})
}

// Delete trashes or removes an entry
func (o *OperationsOps) Delete(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	permanent, err := boolParam(params, "permanent")
	if err != nil {
		return Failure(err.Error())
	}

	if err := o.Engine.Delete(path, permanent); err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{
		"deleted":   path,
		"permanent": permanent,
	})
}

// Copy copies an entry into a directory
func (o *OperationsOps) Copy(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	source, destDir, res := transferParams(params)
	if res != nil {
		return res, nil
	}

	dest, err := o.Engine.Copy(source, destDir)
	if err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{"path": dest})
}

// Move moves an entry into a directory
func (o *OperationsOps) Move(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	source, destDir, res := transferParams(params)
	if res != nil {
		return res, nil
	}

	dest, err := o.Engine.Move(source, destDir)
	if err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{"path": dest})
}

// CreateFile creates an empty file
func (o *OperationsOps) CreateFile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	dir, name, res := createParams(params)
	if res != nil {
		return res, nil
	}

	if err := o.Engine.CreateFile(dir, name); err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{"path": filepath.Join(dir, name)})
}

// CreateFolder creates an empty directory
func (o *OperationsOps) CreateFolder(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	dir, name, res := createParams(params)
	if res != nil {
		return res, nil
	}

	if err := o.Engine.CreateFolder(dir, name); err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{"path": filepath.Join(dir, name)})
}

func transferParams(params map[string]interface{}) (string, string, *types.Result) {
	source, ok := stringParam(params, "source")
	if !ok {
		res, _ := Failure("source parameter required")
		return "", "", res
	}
	destDir, ok := stringParam(params, "dest_dir", "destDir")
	if !ok {
		res, _ := Failure("dest_dir parameter required")
		return "", "", res
	}
	return source, destDir, nil
}

func createParams(params map[string]interface{}) (string, string, *types.Result) {
	dir, ok := stringParam(params, "dir")
	if !ok {
		res, _ := Failure("dir parameter required")
		return "", "", res
	}
	name, ok := stringParam(params, "name")
	if !ok {
		res, _ := Failure("name parameter required")
		return "", "", res
	}
	return dir, name, nil
}
