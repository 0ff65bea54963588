package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/emergentai/taskify/apps/website/internal/apperror"
	"github.com/emergentai/taskify/apps/website/internal/components"
	"github.com/emergentai/taskify/apps/website/internal/config"
	"github.com/emergentai/taskify/apps/website/internal/content"
	"github.com/emergentai/taskify/apps/website/internal/logger"
	"github.com/emergentai/taskify/apps/website/internal/metrics"
)

// Server upgrades /live requests and runs one Session per connection.
type Server struct {
	cfg     config.LiveConfig
	lazy    bool
	site    *content.Site
	log     *slog.Logger
	limiter *rate.Limiter

	upgrader websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewServer(cfg *config.Config, site *content.Site, log *slog.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		cfg:     cfg.Live,
		lazy:    cfg.Carousel.LazyMount,
		site:    site,
		log:     log.With(logger.Scope("live")),
		limiter: rate.NewLimiter(rate.Limit(cfg.Live.SessionsPerSecond), cfg.Live.SessionBurst),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// HandleWebSocket serves GET /live.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.ctx.Err() != nil {
		apperror.Write(w, s.log, apperror.ErrUnavailable.WithMessage("Live sessions are shutting down"))
		return
	}
	if !websocket.IsWebSocketUpgrade(r) {
		apperror.Write(w, s.log, apperror.ErrBadRequest.WithMessage("Expected a websocket upgrade"))
		return
	}
	if !s.limiter.Allow() {
		metrics.LiveSessionsRejected.Inc()
		apperror.Write(w, s.log, apperror.ErrTooManyRequests)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already written an error response
		s.log.Debug("websocket upgrade failed", logger.Error(err))
		return
	}

	s.wg.Add(1)
	defer s.wg.Done()

	s.serve(conn)
}

func (s *Server) serve(conn *websocket.Conn) {
	defer conn.Close()

	metrics.LiveSessions.Inc()
	defer metrics.LiveSessions.Dec()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	out := &connSender{conn: conn, timeout: s.cfg.WriteTimeout}
	c := components.NewTestimonialCarousel(s.site.Testimonials.Items, s.lazy)
	sess := NewSession(ctx, uuid.NewString(), c, out, s.log)
	defer sess.Close()

	log := s.log.With(slog.String("session_id", sess.ID()))
	log.Debug("session opened")

	conn.SetReadLimit(s.cfg.ReadLimitBytes)
	_ = conn.SetReadDeadline(time.Now().Add(s.cfg.PongWait()))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.cfg.PongWait()))
	})

	go s.keepAlive(ctx, out)

	// unblock ReadMessage on shutdown
	go func() {
		<-ctx.Done()
		_ = out.close(websocket.CloseGoingAway, "server shutting down")
	}()

	if err := out.Send(sess.Hello()); err != nil {
		log.Debug("failed to greet client", logger.Error(err))
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read failed", logger.Error(err))
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = out.Send(NewErrorEvent("invalid message format"))
			continue
		}

		if err := sess.Handle(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return
			}
			_ = out.Send(NewErrorEvent(err.Error()))
		}
	}
}

func (s *Server) keepAlive(ctx context.Context, out *connSender) {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := out.ping(); err != nil {
				return
			}
		}
	}
}

// Shutdown closes every open session and waits for them to finish or for
// ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// connSender serialises writes; gorilla connections allow one writer at a
// time.
type connSender struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	timeout time.Duration
}

func (c *connSender) Send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(c.timeout))
	return c.conn.WriteJSON(v)
}

func (c *connSender) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.timeout))
}

func (c *connSender) close(code int, reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := websocket.FormatCloseMessage(code, reason)
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(c.timeout))
	return c.conn.Close()
}
