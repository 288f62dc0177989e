package http

import (
	"net/http"
	"time"

	"github.com/GriffinCanCode/panex/internal/api/middleware"
	"github.com/GriffinCanCode/panex/internal/providers/system"
	"github.com/gin-gonic/gin"
)

const maxUILogBatch = 500

// UILogEntry represents a log entry from the UI
type UILogEntry struct {
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context"`
	Timestamp int64                  `json:"timestamp"` // unix milliseconds
}

// UILogStreamRequest represents a batch of logs from the UI
type UILogStreamRequest struct {
	Source  string       `json:"source"`
	Entries []UILogEntry `json:"entries"`
}

// StreamLogs accepts a batch of front-end log entries and records them
// through the system service, which also writes them to the server log.
func (h *Handlers) StreamLogs(c *gin.Context) {
	if h.system == nil {
		respondFailure(c, http.StatusNotFound, "NotFound", "log collection is disabled")
		return
	}

	var req UILogStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "InvalidArgument", "Invalid log request format")
		return
	}
	if len(req.Entries) == 0 {
		respondFailure(c, http.StatusBadRequest, "InvalidArgument", "No log entries provided")
		return
	}
	if len(req.Entries) > maxUILogBatch {
		respondFailure(c, http.StatusRequestEntityTooLarge, "InvalidArgument", "Too many log entries in one batch")
		return
	}

	source := req.Source
	if source == "" {
		source = "ui"
	}
	reqID := middleware.GetRequestID(c)

	processed := 0
	for _, entry := range req.Entries {
		if entry.Message == "" {
			continue
		}
		ts := time.Now()
		if entry.Timestamp > 0 {
			ts = time.UnixMilli(entry.Timestamp)
		}
		h.system.Record(system.LogEntry{
			Timestamp: ts,
			Level:     entry.Level,
			Message:   entry.Message,
			Source:    source,
			RequestID: reqID,
			Context:   entry.Context,
		})
		processed++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"entries_received":  len(req.Entries),
		"entries_processed": processed,
	})
}
