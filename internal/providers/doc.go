// Package providers holds the services registered with the service registry.
//
// Available Providers:
//   - filesystem: listing, mutations, copy/move, sizes and launchers
//   - system: host information and front-end log collection
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Tools are addressed as "service.tool", e.g. "filesystem.read_dir".
package providers
