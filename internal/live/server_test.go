package live

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergentai/taskify/apps/website/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Live: config.LiveConfig{
			Enabled:           true,
			SessionsPerSecond: 100,
			SessionBurst:      100,
			ReadLimitBytes:    65536,
			PingInterval:      time.Minute,
			WriteTimeout:      time.Second,
		},
		Carousel: config.CarouselConfig{LazyMount: true, DefaultViewportWidth: 1280},
	}
}

func startServer(t *testing.T, cfg *config.Config) (*Server, string) {
	t.Helper()

	srv := NewServer(cfg, testSite(t), discardLogger())
	ts := httptest.NewServer(http.HandlerFunc(srv.HandleWebSocket))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
		ts.Close()
	})

	return srv, "ws" + strings.TrimPrefix(ts.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(v))
}

func TestServer_SessionRoundTrip(t *testing.T) {
	_, url := startServer(t, testConfig())
	conn := dial(t, url)

	var hello HelloEvent
	readJSON(t, conn, &hello)
	assert.Equal(t, EventHello, hello.Type)
	assert.NotEmpty(t, hello.SessionID)
	assert.Equal(t, 0.0, hello.Navbar.Y)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgScroll, Y: 0}))
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgScroll, Y: 150}))

	var nav NavbarEvent
	readJSON(t, conn, &nav)
	assert.Equal(t, 0.0, nav.Y)
	readJSON(t, conn, &nav)
	assert.Equal(t, EventNavbar, nav.Type)
	assert.Equal(t, -100.0, nav.Y)
	assert.InDelta(t, 0.9, nav.Scale, 1e-9)
	assert.InDelta(t, 5.0, nav.Blur, 1e-9)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "viewport", "width": 1000, "height": 800}))
	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": "slides",
		"slides": []map[string]any{
			{"id": "priya-k", "x": 10, "y": 10, "width": 300, "height": 200},
		},
	}))

	var mount MountEvent
	readJSON(t, conn, &mount)
	assert.Equal(t, EventMount, mount.Type)
	assert.Equal(t, "priya-k", mount.ID)
	assert.Contains(t, mount.HTML, "Priya K., Operations Lead")
}

func TestServer_InvalidMessagesKeepSessionOpen(t *testing.T) {
	_, url := startServer(t, testConfig())
	conn := dial(t, url)

	var hello HelloEvent
	readJSON(t, conn, &hello)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var ev ErrorEvent
	readJSON(t, conn, &ev)
	assert.Equal(t, EventError, ev.Type)
	assert.Equal(t, "invalid message format", ev.Message)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "warp"}))
	readJSON(t, conn, &ev)
	assert.Contains(t, ev.Message, "unknown message type")

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgMenu, Action: MenuToggle}))
	var nav NavbarEvent
	readJSON(t, conn, &nav)
	assert.True(t, nav.Open)
}

func TestServer_AdmissionLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Live.SessionsPerSecond = 0.001
	cfg.Live.SessionBurst = 1

	_, url := startServer(t, cfg)
	dial(t, url)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestServer_ShutdownClosesSessions(t *testing.T) {
	srv, url := startServer(t, testConfig())
	conn := dial(t, url)

	var hello HelloEvent
	readJSON(t, conn, &hello)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func decodeErrorCode(t *testing.T, resp *http.Response) (string, string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error.Code, body.Error.Message
}

func TestServer_RejectsPlainHTTP(t *testing.T) {
	srv := NewServer(testConfig(), testSite(t), discardLogger())
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	rec := httptest.NewRecorder()
	srv.HandleWebSocket(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	resp := rec.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	code, msg := decodeErrorCode(t, resp)
	assert.Equal(t, "bad_request", code)
	assert.Equal(t, "Expected a websocket upgrade", msg)
}

func TestServer_RefusesSessionsAfterShutdown(t *testing.T) {
	srv, url := startServer(t, testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	code, _ := decodeErrorCode(t, resp)
	assert.Equal(t, "unavailable", code)
}
