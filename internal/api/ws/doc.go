// Package ws provides the WebSocket invoke channel used by the desktop UI.
//
// Each connection gets a conn_ ULID for its log lines. Frames are JSON text
// messages encoded with sonic.
//
// Message Types (Client → Server):
//   - invoke: {"type":"invoke","id":"7","command":"read_dir","args":{"path":"/home/me"}}
//   - ping: keep-alive, answered with pong carrying the same id
//
// Message Types (Server → Client):
//   - result: {"type":"result","id":"7","result":{"success":true,"data":{...}}}
//   - pong: reply to ping
//   - error: malformed frame or unknown frame type
//
// Invokes run concurrently, so a long copy does not hold up a listing; clients
// match results to requests by id. An invoke without an id is assigned a UUID.
// Closing the connection cancels invokes still in flight.
//
// Example Usage:
//
//	handler := ws.NewHandler(registry, filesystem.ToolForCommand, metrics, logger)
//	router.GET("/ws", handler.HandleConnection)
package ws
