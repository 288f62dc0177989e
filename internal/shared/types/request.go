package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// WebSocket frame types
const (
	FrameInvoke = "invoke"
	FrameResult = "result"
	FramePing   = "ping"
	FramePong   = "pong"
	FrameError  = "error"
)

// WSMessage is a frame sent by a WebSocket client
type WSMessage struct {
	Type    string                 `json:"type"`
	ID      string                 `json:"id,omitempty"`
	Command string                 `json:"command,omitempty"`
	Args    map[string]interface{} `json:"args,omitempty"`
}

// WSResponse is a frame sent to a WebSocket client
type WSResponse struct {
	Type    string  `json:"type"`
	ID      string  `json:"id,omitempty"`
	Result  *Result `json:"result,omitempty"`
	Message string  `json:"message,omitempty"`
}
