package filesystem

import (
	"fmt"
	"strconv"

	"github.com/GriffinCanCode/panex/internal/fsops"
	"github.com/GriffinCanCode/panex/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/panex/internal/launcher"
	"github.com/GriffinCanCode/panex/internal/shared/types"
	"go.uber.org/zap"
)

// FilesystemOps holds the collaborators shared by every tool group
type FilesystemOps struct {
	Engine   *fsops.Engine
	Launcher launcher.Launcher
	Metrics  *monitoring.Metrics
	Logger   *zap.Logger
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure reports a malformed request
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg, ErrorKind: string(fsops.KindInvalidArgument)}, nil
}

// FailureFrom converts an engine or launcher error into a failed result,
// keeping its message and kind. Foreign errors carry no kind.
func FailureFrom(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{Success: false, Error: &msg, ErrorKind: string(fsops.KindOf(err))}, nil
}

// stringParam returns the first non-empty string stored under any of names.
// Later names are aliases, e.g. the camelCase spelling used by the desktop UI.
func stringParam(params map[string]interface{}, names ...string) (string, bool) {
	for _, name := range names {
		if v, ok := params[name].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// boolParam reads an optional flag given as a JSON bool or a "true"/"false" string
func boolParam(params map[string]interface{}, name string) (bool, error) {
	switch v := params[name].(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%s must be a boolean", name)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%s must be a boolean", name)
	}
}
