package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GriffinCanCode/panex/internal/api/middleware"
	"github.com/GriffinCanCode/panex/internal/infrastructure/config"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Port = "0"
	cfg.Logging.Level = "error"
	cfg.RateLimit.Enabled = false
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	srv, err := NewServer(cfg, "test")
	require.NoError(t, err)
	return srv
}

func TestNewServerRejectsBadLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Logging.Level = "chatty"

	_, err := NewServer(cfg, "test")
	assert.Error(t, err)
}

func TestRoutesAreWired(t *testing.T) {
	srv := newTestServer(t, testConfig())

	for _, path := range []string{"/", "/health", "/services", "/metrics"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader), path)
	}

	req := httptest.NewRequest("POST", "/invoke/get_parent_dir", strings.NewReader(`{"path":"/tmp/x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestForeignPageCannotDelete(t *testing.T) {
	srv := newTestServer(t, testConfig())
	victim := filepath.Join(t.TempDir(), "precious")
	require.NoError(t, os.Mkdir(victim, 0o755))
	body := `{"path":"` + filepath.ToSlash(victim) + `","permanent":true}`

	send := func(origin, contentType string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/invoke/delete_entry", strings.NewReader(body))
		req.Header.Set("Origin", origin)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w
	}

	w := send("https://evil.example", "text/plain")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.DirExists(t, victim)

	w = send("tauri://localhost", "text/plain")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.DirExists(t, victim)

	w = send("tauri://localhost", "application/json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tauri://localhost", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NoDirExists(t, victim)
}

func TestForeignPageCannotOpenWebSocket(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, testConfig()).Handler())
	defer ts.Close()

	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCompression(t *testing.T) {
	req := httptest.NewRequest("GET", "/services", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	w := httptest.NewRecorder()
	newTestServer(t, testConfig()).Handler().ServeHTTP(w, req)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	cfg := testConfig()
	cfg.Server.Compression = false
	w = httptest.NewRecorder()
	newTestServer(t, cfg).Handler().ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
}

func TestRateLimitWired(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 1
	cfg.RateLimit.Burst = 1
	srv := newTestServer(t, cfg)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestWebSocketThroughCompression(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, testConfig()).Handler())
	defer ts.Close()

	header := http.Header{}
	header.Set("Accept-Encoding", "gzip")
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", header)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":    "invoke",
		"id":      "1",
		"command": "get_parent_dir",
		"args":    map[string]interface{}{"path": "/tmp/x"},
	}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var resp struct {
		Type   string `json:"type"`
		ID     string `json:"id"`
		Result struct {
			Success bool                   `json:"success"`
			Data    map[string]interface{} `json:"data"`
		} `json:"result"`
	}
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "result", resp.Type)
	assert.Equal(t, "1", resp.ID)
	assert.True(t, resp.Result.Success)
	assert.Equal(t, "/tmp", resp.Result.Data["path"])
}

func TestRunAndShutdown(t *testing.T) {
	srv := newTestServer(t, testConfig())

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}
