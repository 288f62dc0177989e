// Package service provides the service registry that routes tool calls to providers.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Tools are addressed as "service.tool". Routing failures come back both as a
// Go error and as a failed types.Result carrying an ErrorKind, so transports
// can forward the result unchanged.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(filesystemProvider)
//	result, err := registry.Execute(ctx, "filesystem.read_dir", params, appCtx)
package service
