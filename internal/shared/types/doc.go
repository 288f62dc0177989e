// Package types provides shared data structures for the PanEx server.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Per-call metadata (request ID, transport)
//   - Result: Standard operation result, with a machine-readable ErrorKind on failure
//
// Request Types:
//   - ExecuteRequest: Service tool execution by tool ID
//   - WSMessage, WSResponse: WebSocket invoke/result/ping/pong/error frames
//
// Example Usage:
//
//	result, err := registry.Execute(ctx, "filesystem.read_dir",
//	    map[string]interface{}{"path": "/home/me"},
//	    &types.Context{RequestID: reqID, Transport: "http"})
package types
