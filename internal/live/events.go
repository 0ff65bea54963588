package live

import (
	"github.com/emergentai/taskify/apps/website/internal/scroll"
	"github.com/emergentai/taskify/apps/website/internal/viewport"
)

// MessageType names inbound and outbound live messages.
type MessageType string

const (
	// Client to server
	MsgViewport MessageType = "viewport"
	MsgScroll   MessageType = "scroll"
	MsgSlides   MessageType = "slides"
	MsgMenu     MessageType = "menu"

	// Server to client
	EventHello  MessageType = "hello"
	EventNavbar MessageType = "navbar"
	EventMount  MessageType = "mount"
	EventError  MessageType = "error"
)

// Menu actions
const (
	MenuToggle = "toggle"
	MenuLink   = "link"
)

// ClientMessage is the union of every inbound message; Type selects which
// fields are meaningful.
type ClientMessage struct {
	Type MessageType `json:"type"`

	// viewport
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// scroll
	Y float64 `json:"y,omitempty"`

	// slides
	Slides []SlideRegion `json:"slides,omitempty"`

	// menu
	Action string `json:"action,omitempty"`
}

// SlideRegion is a slide's bounding box relative to the viewport, as the
// browser measured it. Mounted marks slides the page already rendered.
type SlideRegion struct {
	ID string `json:"id"`
	viewport.Rect
	Mounted bool `json:"mounted,omitempty"`
}

// NavbarEvent carries the navbar styling values and menu state.
type NavbarEvent struct {
	Type  MessageType `json:"type"`
	Y     float64     `json:"y"`
	Scale float64     `json:"scale"`
	Blur  float64     `json:"blur"`
	Open  bool        `json:"open"`
}

func NewNavbarEvent(v scroll.Visuals, open bool) NavbarEvent {
	return NavbarEvent{
		Type:  EventNavbar,
		Y:     v.Y,
		Scale: v.Scale,
		Blur:  v.Blur,
		Open:  open,
	}
}

// HelloEvent is the first event on every session.
type HelloEvent struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"sessionId"`
	Navbar    NavbarEvent `json:"navbar"`
}

func NewHelloEvent(sessionID string, navbar NavbarEvent) HelloEvent {
	return HelloEvent{
		Type:      EventHello,
		SessionID: sessionID,
		Navbar:    navbar,
	}
}

// MountEvent replaces a placeholder slide with its rendered content.
type MountEvent struct {
	Type MessageType `json:"type"`
	ID   string      `json:"id"`
	HTML string      `json:"html"`
}

func NewMountEvent(id, html string) MountEvent {
	return MountEvent{
		Type: EventMount,
		ID:   id,
		HTML: html,
	}
}

// ErrorEvent reports a rejected inbound message. The session stays open.
type ErrorEvent struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

func NewErrorEvent(message string) ErrorEvent {
	return ErrorEvent{
		Type:    EventError,
		Message: message,
	}
}
