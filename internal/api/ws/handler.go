package ws

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/GriffinCanCode/panex/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/panex/internal/shared/id"
	"github.com/GriffinCanCode/panex/internal/shared/types"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	maxFrameSize = 1 << 20
	writeTimeout = 10 * time.Second
)

// Executor runs a tool by ID
type Executor interface {
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// CommandResolver maps an invoke command name to a tool ID
type CommandResolver func(command string) (toolID string, ok bool)

// Handler manages WebSocket connections
type Handler struct {
	exec    Executor
	resolve CommandResolver
	metrics *monitoring.Metrics
	logger  *zap.Logger

	upgrader    websocket.Upgrader
	allowOrigin func(origin string) bool
}

// NewHandler creates a new WebSocket handler. metrics and logger may be nil.
func NewHandler(exec Executor, resolve CommandResolver, metrics *monitoring.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		exec:    exec,
		resolve: resolve,
		metrics: metrics,
		logger:  logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// AllowOrigins admits browser origins accepted by allow in addition to the
// server's own host. Without it only same-host pages may connect.
func (h *Handler) AllowOrigins(allow func(origin string) bool) *Handler {
	h.allowOrigin = allow
	return h
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	return h.allowOrigin != nil && h.allowOrigin(origin)
}

// session is one live connection. Writes are serialized; invokes run concurrently.
type session struct {
	h       *Handler
	conn    *websocket.Conn
	connID  id.ConnectionID
	writeMu sync.Mutex
}

// HandleConnection upgrades the request and serves frames until the client disconnects.
// In-flight invokes are cancelled when the connection closes.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameSize)

	s := &session{h: h, conn: conn, connID: id.NewConnectionID()}
	logger := h.logger.With(zap.String("conn_id", s.connID.String()))
	logger.Debug("WebSocket connected", zap.String("remote", c.ClientIP()))

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	var inflight sync.WaitGroup
	defer func() {
		cancel()
		inflight.Wait()
		logger.Debug("WebSocket disconnected")
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Info("WebSocket read error", zap.Error(err))
			}
			return
		}

		var msg types.WSMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			s.record("in", "malformed")
			s.sendError("", "malformed frame")
			continue
		}
		s.record("in", frameLabel(msg.Type))

		switch msg.Type {
		case types.FrameInvoke:
			if msg.ID == "" {
				msg.ID = uuid.NewString()
			}
			inflight.Add(1)
			go func(msg types.WSMessage) {
				defer inflight.Done()
				s.invoke(ctx, msg)
			}(msg)
		case types.FramePing:
			s.send(types.WSResponse{Type: types.FramePong, ID: msg.ID})
		default:
			s.sendError(msg.ID, fmt.Sprintf("unknown message type: %s", msg.Type))
		}
	}
}

func (s *session) invoke(ctx context.Context, msg types.WSMessage) {
	toolID, ok := s.h.resolve(msg.Command)
	if !ok {
		s.sendResult(msg.ID, failure("NotFound", fmt.Sprintf("unknown command: %s", msg.Command)))
		return
	}

	appCtx := &types.Context{RequestID: msg.ID, Transport: "ws"}
	result, err := s.h.exec.Execute(ctx, toolID, msg.Args, appCtx)
	if err != nil && result == nil {
		s.h.logger.Error("Tool execution failed",
			zap.String("conn_id", s.connID.String()),
			zap.String("tool", toolID),
			zap.Error(err))
		result = failure("Internal", err.Error())
	}
	s.sendResult(msg.ID, result)
}

func (s *session) sendResult(frameID string, result *types.Result) {
	s.send(types.WSResponse{Type: types.FrameResult, ID: frameID, Result: result})
}

func (s *session) sendError(frameID, message string) {
	s.send(types.WSResponse{Type: types.FrameError, ID: frameID, Message: message})
}

func (s *session) send(resp types.WSResponse) {
	data, err := sonic.Marshal(resp)
	if err != nil {
		s.h.logger.Error("Failed to encode frame", zap.Error(err))
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.h.logger.Debug("WebSocket write failed",
			zap.String("conn_id", s.connID.String()),
			zap.Error(err))
		return
	}
	s.record("out", resp.Type)
}

func (s *session) record(direction, msgType string) {
	if s.h.metrics != nil {
		s.h.metrics.RecordWSMessage(direction, msgType)
	}
}

// frameLabel bounds the metric label set to the known frame types
func frameLabel(frameType string) string {
	switch frameType {
	case types.FrameInvoke, types.FramePing:
		return frameType
	default:
		return "unknown"
	}
}

func failure(kind, message string) *types.Result {
	return &types.Result{Success: false, Error: &message, ErrorKind: kind}
}
