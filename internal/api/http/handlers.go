package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/GriffinCanCode/panex/internal/api/middleware"
	"github.com/GriffinCanCode/panex/internal/domain/service"
	"github.com/GriffinCanCode/panex/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/panex/internal/providers/system"
	"github.com/GriffinCanCode/panex/internal/shared/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommandResolver maps an invoke command name to a tool ID
type CommandResolver func(command string) (toolID string, ok bool)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	resolve  CommandResolver
	metrics  *monitoring.Metrics
	system   *system.Provider
	logger   *zap.Logger
	version  string
}

// Options holds the optional collaborators of Handlers
type Options struct {
	Metrics *monitoring.Metrics
	System  *system.Provider
	Logger  *zap.Logger
	Version string
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, resolve CommandResolver, opts Options) *Handlers {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		registry: registry,
		resolve:  resolve,
		metrics:  opts.Metrics,
		system:   opts.System,
		logger:   logger,
		version:  opts.Version,
	}
}

// RegisterRoutes mounts every HTTP endpoint on router
func (h *Handlers) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/services", h.ListServices)
	router.POST("/services/execute", requireJSON, h.ExecuteService)
	router.POST("/invoke/:command", requireJSON, h.Invoke)
	router.POST("/logs", requireJSON, h.StreamLogs)
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}
}

// Root handles the liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "PanEx filesystem backend",
		"version": h.version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		if cat != types.CategoryFilesystem && cat != types.CategorySystem {
			respondFailure(c, http.StatusBadRequest, "InvalidArgument", "unknown category: "+categoryStr)
			return
		}
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// ExecuteService executes a service tool addressed by its full ID
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "InvalidArgument", err.Error())
		return
	}

	h.execute(c, req.ToolID, req.Params, "http")
}

// Invoke runs a tool by its front-end command name. The body is the
// argument object and may be empty for commands without arguments.
func (h *Handlers) Invoke(c *gin.Context) {
	command := c.Param("command")
	toolID, ok := h.resolve(command)
	if !ok {
		respondFailure(c, http.StatusNotFound, "NotFound", "unknown command: "+command)
		return
	}

	args := map[string]interface{}{}
	if err := c.ShouldBindJSON(&args); err != nil && !errors.Is(err, io.EOF) {
		respondFailure(c, http.StatusBadRequest, "InvalidArgument", err.Error())
		return
	}

	h.execute(c, toolID, args, "invoke")
}

func (h *Handlers) execute(c *gin.Context, toolID string, params map[string]interface{}, transport string) {
	appCtx := &types.Context{
		RequestID: middleware.GetRequestID(c),
		Transport: transport,
	}

	result, err := h.registry.Execute(c.Request.Context(), toolID, params, appCtx)
	if err != nil {
		// Routing failures come back with a result describing them
		if result != nil {
			status := http.StatusBadRequest
			if result.ErrorKind == service.KindUnknownService {
				status = http.StatusNotFound
			}
			c.JSON(status, result)
			return
		}
		h.logger.Error("Tool execution failed",
			zap.String("tool", toolID),
			zap.String("request_id", appCtx.RequestID),
			zap.Error(err))
		respondFailure(c, http.StatusInternalServerError, "Internal", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// requireJSON rejects bodies not declared as application/json. Browsers send
// text/plain and form bodies cross-origin without a preflight.
func requireJSON(c *gin.Context) {
	if c.Request.ContentLength != 0 && c.ContentType() != gin.MIMEJSON {
		respondFailure(c, http.StatusUnsupportedMediaType, "InvalidArgument", "Content-Type must be application/json")
		c.Abort()
		return
	}
	c.Next()
}

func respondFailure(c *gin.Context, status int, kind, message string) {
	c.JSON(status, &types.Result{Success: false, Error: &message, ErrorKind: kind})
}
