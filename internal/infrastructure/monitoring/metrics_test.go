package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOperation(t *testing.T) {
	m := NewMetrics()

	m.RecordOperation("filesystem.copy_entry", "", 10*time.Millisecond)
	m.RecordOperation("filesystem.copy_entry", "NotFound", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationCalls.WithLabelValues("filesystem.copy_entry", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationCalls.WithLabelValues("filesystem.copy_entry", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationErrors.WithLabelValues("filesystem.copy_entry", "NotFound")))

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.TotalOperations)
	assert.Equal(t, int64(1), snap.FailedOps)
}

func TestIndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.IncWSConnections()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.WSConnections))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.WSConnections))
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	router := gin.New()
	router.Use(Middleware(m))
	router.POST("/invoke/:command", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, cmd := range []string{"read_dir", "copy_entry"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/invoke/"+cmd, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/invoke/:command", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, int64(1), m.Snapshot().TotalErrors)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	NewTimer(m, "filesystem.read_dir").Stop("")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `panex_fs_operations_total{status="success",tool="filesystem.read_dir"} 1`)
	assert.Contains(t, w.Body.String(), "panex_uptime_seconds")
}

func TestTimerWithoutMetrics(t *testing.T) {
	timer := NewTimer(nil, "filesystem.read_dir")
	assert.NotPanics(t, func() { timer.Stop("") })
}
