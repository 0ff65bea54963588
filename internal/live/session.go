package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	g "maragu.dev/gomponents"

	"github.com/emergentai/taskify/apps/website/internal/carousel"
	"github.com/emergentai/taskify/apps/website/internal/logger"
	"github.com/emergentai/taskify/apps/website/internal/metrics"
	"github.com/emergentai/taskify/apps/website/internal/scroll"
	"github.com/emergentai/taskify/apps/website/internal/viewport"
)

// Sender delivers one outbound event to the client. Implementations must
// be safe for concurrent use.
type Sender interface {
	Send(v any) error
}

var ErrSessionClosed = errors.New("live session closed")

// Session is the server-side state of one page view: the navbar
// controller, the menu and the testimonial carousel with its viewport
// observer.
type Session struct {
	id  string
	out Sender
	log *slog.Logger

	controller *scroll.Controller
	menu       scroll.Menu
	carousel   *carousel.Carousel
	observer   *viewport.Observer
	binding    *carousel.Binding

	// navMu orders navbar events so the last one sent always carries the
	// current menu state.
	navMu sync.Mutex

	samples chan float64
	cancel  context.CancelFunc
	done    chan struct{}

	closeOnce sync.Once
}

// NewSession wires a session and starts its scroll pump. Call Close when
// the client goes away.
func NewSession(ctx context.Context, id string, c *carousel.Carousel, out Sender, log *slog.Logger) *Session {
	ctx, cancel := context.WithCancel(ctx)

	s := &Session{
		id:         id,
		out:        out,
		log:        log.With(logger.Scope("live.session"), slog.String("session_id", id)),
		controller: scroll.NewController(),
		carousel:   c,
		observer:   viewport.NewObserver(),
		samples:    make(chan float64, 64),
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	// regions are unknown until the client measures them
	s.binding = c.Observe(s.observer, func(carousel.Entry) viewport.Rect { return viewport.Rect{} }, s.sendMount)

	go s.pump(ctx)

	return s
}

func (s *Session) ID() string { return s.id }

// Hello is the greeting sent right after the upgrade.
func (s *Session) Hello() HelloEvent {
	return NewHelloEvent(s.id, s.navbar(s.controller.Visuals()))
}

func (s *Session) pump(ctx context.Context) {
	defer close(s.done)

	err := s.controller.Run(ctx, s.samples, func(_ scroll.State, v scroll.Visuals) {
		metrics.ScrollSamples.Inc()

		s.navMu.Lock()
		defer s.navMu.Unlock()
		s.send(s.navbar(v))
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn("scroll pump stopped", logger.Error(err))
	}
}

// Handle applies one client message. A returned error means the message
// was rejected; the session is still usable.
func (s *Session) Handle(ctx context.Context, msg ClientMessage) error {
	metrics.LiveMessages.WithLabelValues(string(msg.Type)).Inc()

	switch msg.Type {
	case MsgViewport:
		if msg.Width <= 0 || msg.Height <= 0 {
			return fmt.Errorf("viewport must have a positive size, got %gx%g", msg.Width, msg.Height)
		}
		s.observer.SetViewport(viewport.Rect{Width: msg.Width, Height: msg.Height})
		s.observer.Check()
		return nil

	case MsgScroll:
		select {
		case <-s.done:
			return ErrSessionClosed
		default:
		}
		select {
		case s.samples <- msg.Y:
			return nil
		case <-s.done:
			return ErrSessionClosed
		case <-ctx.Done():
			return ctx.Err()
		}

	case MsgSlides:
		for _, r := range msg.Slides {
			if r.Mounted {
				s.carousel.Adopt(r.ID)
			}
			s.binding.Move(r.ID, r.Rect)
		}
		s.observer.Check()
		return nil

	case MsgMenu:
		if msg.Action != MenuToggle && msg.Action != MenuLink {
			return fmt.Errorf("unknown menu action %q", msg.Action)
		}

		s.navMu.Lock()
		defer s.navMu.Unlock()
		if msg.Action == MenuToggle {
			s.menu.Toggle()
		} else {
			s.menu.SelectLink()
		}
		s.send(s.navbar(s.controller.Visuals()))
		return nil

	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}

// Close stops the scroll pump and releases every viewport subscription.
// It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
		s.binding.Release()
		s.observer.Close()
		s.log.Debug("session closed", slog.Int("mounted", s.carousel.Visibility().Count()))
	})
}

func (s *Session) navbar(v scroll.Visuals) NavbarEvent {
	return NewNavbarEvent(v, s.menu.Open())
}

func (s *Session) sendMount(id string, node g.Node) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		s.log.Error("failed to render slide", slog.String("slide_id", id), logger.Error(err))
		return
	}
	metrics.SlidesMounted.WithLabelValues(metrics.PhaseLive).Inc()
	s.send(NewMountEvent(id, b.String()))
}

func (s *Session) send(v any) {
	if err := s.out.Send(v); err != nil {
		s.log.Debug("failed to send event", logger.Error(err))
	}
}
