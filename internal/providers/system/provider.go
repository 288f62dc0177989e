package system

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/GriffinCanCode/panex/internal/shared/types"
	"go.uber.org/zap"
)

// ServiceID is the registry ID of the system service
const ServiceID = "system"

const defaultLogCapacity = 1000

// Provider reports host information and keeps the recent front-end log
type Provider struct {
	version   string
	startTime time.Time
	logs      *CircularLogBuffer
	logger    *zap.Logger
}

// LogEntry is a log line forwarded by the front end
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Source    string                 `json:"source,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

// CircularLogBuffer is a thread-safe ring of the most recent log entries
type CircularLogBuffer struct {
	entries []*LogEntry
	head    int
	size    int
	maxSize int
	mu      sync.RWMutex
}

// NewCircularLogBuffer creates a buffer holding at most maxSize entries
func NewCircularLogBuffer(maxSize int) *CircularLogBuffer {
	if maxSize <= 0 {
		maxSize = defaultLogCapacity
	}
	return &CircularLogBuffer{
		entries: make([]*LogEntry, maxSize),
		maxSize: maxSize,
	}
}

// Add inserts an entry, overwriting the oldest when full
func (cb *CircularLogBuffer) Add(entry *LogEntry) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.entries[cb.head] = entry
	cb.head = (cb.head + 1) % cb.maxSize
	if cb.size < cb.maxSize {
		cb.size++
	}
}

// GetRecent returns up to limit entries, newest first, optionally filtered by level
func (cb *CircularLogBuffer) GetRecent(limit int, levelFilter string) []LogEntry {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	if limit > cb.size {
		limit = cb.size
	}
	result := make([]LogEntry, 0, limit)

	for i := 0; i < cb.size && len(result) < limit; i++ {
		idx := (cb.head - 1 - i + cb.maxSize) % cb.maxSize
		entry := cb.entries[idx]
		if entry != nil && (levelFilter == "" || entry.Level == levelFilter) {
			result = append(result, *entry)
		}
	}
	return result
}

// Len returns the number of buffered entries
func (cb *CircularLogBuffer) Len() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.size
}

// NewProvider creates the system service. logger may be nil.
func NewProvider(version string, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		version:   version,
		startTime: time.Now(),
		logs:      NewCircularLogBuffer(defaultLogCapacity),
		logger:    logger,
	}
}

// Definition returns service metadata
func (s *Provider) Definition() types.Service {
	return types.Service{
		ID:          ServiceID,
		Name:        "System Service",
		Description: "Host information and front-end log collection",
		Category:    types.CategorySystem,
		Capabilities: []string{
			"info",
			"logging",
		},
		Tools: []types.Tool{
			{
				ID:          "system.info",
				Name:        "System Info",
				Description: "Get host and process information",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "system.log",
				Name:        "Log Message",
				Description: "Record a front-end log message",
				Parameters: []types.Parameter{
					{Name: "message", Type: "string", Description: "Log message", Required: true},
					{Name: "level", Type: "string", Description: "debug, info, warn or error", Required: false},
				},
				Returns: "boolean",
			},
			{
				ID:          "system.get_logs",
				Name:        "Get Logs",
				Description: "Retrieve recent front-end log messages",
				Parameters: []types.Parameter{
					{Name: "limit", Type: "number", Description: "Number of logs to retrieve", Required: false},
					{Name: "level", Type: "string", Description: "Filter by log level", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "system.ping",
				Name:        "Ping",
				Description: "Test service availability",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute runs a system operation
func (s *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "system.info":
		return s.info()
	case "system.log":
		return s.log(params, appCtx)
	case "system.get_logs":
		return s.getLogs(params)
	case "system.ping":
		return s.ping()
	default:
		return failure("NotFound", fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// Record buffers entry and writes it to the server log under the same level.
// Unknown levels are stored as "info".
func (s *Provider) Record(entry LogEntry) {
	entry.Level = normalizeLevel(entry.Level)
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	s.logs.Add(&entry)

	fields := make([]zap.Field, 0, len(entry.Context)+2)
	if entry.Source != "" {
		fields = append(fields, zap.String("source", entry.Source))
	}
	if entry.RequestID != "" {
		fields = append(fields, zap.String("request_id", entry.RequestID))
	}
	for key, value := range entry.Context {
		fields = append(fields, zap.Any(key, value))
	}

	switch entry.Level {
	case "error":
		s.logger.Error(entry.Message, fields...)
	case "warn":
		s.logger.Warn(entry.Message, fields...)
	case "debug":
		s.logger.Debug(entry.Message, fields...)
	default:
		s.logger.Info(entry.Message, fields...)
	}
}

// Logs exposes the buffered entries
func (s *Provider) Logs() *CircularLogBuffer {
	return s.logs
}

func (s *Provider) info() (*types.Result, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return success(map[string]interface{}{
		"version":        s.version,
		"go_version":     runtime.Version(),
		"os":             runtime.GOOS,
		"arch":           runtime.GOARCH,
		"cpus":           runtime.NumCPU(),
		"goroutines":     runtime.NumGoroutine(),
		"memory_alloc":   m.Alloc / 1024 / 1024,      // MB
		"memory_sys":     m.Sys / 1024 / 1024,        // MB
		"uptime_seconds": time.Since(s.startTime).Seconds(),
	})
}

func (s *Provider) log(params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	message, ok := params["message"].(string)
	if !ok || message == "" {
		return failure("InvalidArgument", "message parameter required")
	}
	level, _ := params["level"].(string)

	entry := LogEntry{
		Level:   level,
		Message: message,
		Source:  "ui",
	}
	if appCtx != nil {
		entry.RequestID = appCtx.RequestID
	}
	s.Record(entry)

	return success(map[string]interface{}{"logged": true})
}

func (s *Provider) getLogs(params map[string]interface{}) (*types.Result, error) {
	limit := 100
	if l, ok := params["limit"].(float64); ok && l > 0 {
		limit = int(l)
	}
	levelFilter, _ := params["level"].(string)

	logs := s.logs.GetRecent(limit, levelFilter)
	return success(map[string]interface{}{
		"logs":  logs,
		"count": len(logs),
	})
}

func (s *Provider) ping() (*types.Result, error) {
	return success(map[string]interface{}{
		"pong":      true,
		"timestamp": time.Now().Unix(),
	})
}

func normalizeLevel(level string) string {
	switch l := strings.ToLower(level); l {
	case "error", "warn", "info", "debug":
		return l
	case "warning":
		return "warn"
	case "verbose", "trace":
		return "debug"
	default:
		return "info"
	}
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(kind, message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg, ErrorKind: kind}, nil
}
