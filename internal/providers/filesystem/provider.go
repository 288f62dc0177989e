package filesystem

import (
	"context"
	"fmt"
	"sort"

	"github.com/GriffinCanCode/panex/internal/fsops"
	"github.com/GriffinCanCode/panex/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/panex/internal/launcher"
	"github.com/GriffinCanCode/panex/internal/shared/types"
	"go.uber.org/zap"
)

// ServiceID is the registry ID of the filesystem service
const ServiceID = "filesystem"

// Provider exposes the filesystem engine and launchers as a service
type Provider struct {
	ops *FilesystemOps

	directory  *DirectoryOps
	operations *OperationsOps
	shell      *ShellOps

	handlers map[string]handler
}

type handler func(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)

// commands maps the desktop UI's invoke command names to tool IDs
var commands = map[string]string{
	"read_dir":           "filesystem.read_dir",
	"get_home_dir":       "filesystem.get_home_dir",
	"get_parent_dir":     "filesystem.get_parent_dir",
	"open_entry":         "filesystem.open_entry",
	"open_in_terminal":   "filesystem.open_in_terminal",
	"rename_entry":       "filesystem.rename_entry",
	"delete_entry":       "filesystem.delete_entry",
	"copy_entry":         "filesystem.copy_entry",
	"move_entry":         "filesystem.move_entry",
	"calculate_dir_size": "filesystem.calculate_dir_size",
	"create_file":        "filesystem.create_file",
	"create_folder":      "filesystem.create_folder",
	"unique_name":        "filesystem.unique_name",
}

// ToolForCommand resolves an invoke command name to its tool ID
func ToolForCommand(command string) (string, bool) {
	toolID, ok := commands[command]
	return toolID, ok
}

// Commands returns the supported invoke command names, sorted
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewProvider creates the filesystem service. metrics and logger may be nil.
func NewProvider(engine *fsops.Engine, l launcher.Launcher, metrics *monitoring.Metrics, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	ops := &FilesystemOps{
		Engine:   engine,
		Launcher: l,
		Metrics:  metrics,
		Logger:   logger,
	}

	p := &Provider{
		ops:        ops,
		directory:  &DirectoryOps{FilesystemOps: ops},
		operations: &OperationsOps{FilesystemOps: ops},
		shell:      &ShellOps{FilesystemOps: ops},
	}

	p.handlers = map[string]handler{
		// Directory operations
		"filesystem.read_dir":           p.directory.ReadDir,
		"filesystem.get_home_dir":       p.directory.HomeDir,
		"filesystem.get_parent_dir":     p.directory.ParentDir,
		"filesystem.calculate_dir_size": p.directory.DirSize,
		"filesystem.unique_name":        p.directory.UniqueName,

		// Mutations
		"filesystem.rename_entry":  p.operations.Rename,
		"filesystem.delete_entry":  p.operations.Delete,
		"filesystem.copy_entry":    p.operations.Copy,
		"filesystem.move_entry":    p.operations.Move,
		"filesystem.create_file":   p.operations.CreateFile,
		"filesystem.create_folder": p.operations.CreateFolder,

		// Launchers
		"filesystem.open_entry":       p.shell.Open,
		"filesystem.open_in_terminal": p.shell.OpenTerminal,
	}
	return p
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.directory.GetTools()...)
	tools = append(tools, p.operations.GetTools()...)
	tools = append(tools, p.shell.GetTools()...)

	return types.Service{
		ID:          ServiceID,
		Name:        "Filesystem Service",
		Description: "File manager operations on the local filesystem",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"list",
			"rename",
			"delete",
			"trash",
			"copy",
			"move",
			"size",
			"create",
			"open",
			"terminal",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module and records the outcome
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	h, ok := p.handlers[toolID]
	if !ok {
		msg := fmt.Sprintf("unknown tool: %s", toolID)
		return &types.Result{Success: false, Error: &msg, ErrorKind: string(fsops.KindNotFound)}, nil
	}

	if err := ctx.Err(); err != nil {
		msg := fmt.Sprintf("request cancelled: %v", err)
		return &types.Result{Success: false, Error: &msg, ErrorKind: string(fsops.KindInvalidArgument)}, nil
	}

	timer := monitoring.NewTimer(p.ops.Metrics, toolID)
	result, err := h(ctx, params, appCtx)
	if err != nil {
		timer.Stop("Internal")
		return nil, err
	}

	kind := result.ErrorKind
	if !result.Success && kind == "" {
		kind = "Unknown"
	}
	duration := timer.Stop(kind)
	fields := []zap.Field{
		zap.String("tool", toolID),
		zap.Duration("duration", duration),
	}
	if appCtx != nil && appCtx.RequestID != "" {
		fields = append(fields, zap.String("request_id", appCtx.RequestID))
	}
	if result.Success {
		p.ops.Logger.Debug("Tool executed", fields...)
	} else {
		fields = append(fields, zap.String("kind", result.ErrorKind), zap.String("error", *result.Error))
		p.ops.Logger.Info("Tool failed", fields...)
	}
	return result, nil
}
