package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/emergentai/taskify/apps/website/internal/config"
	"github.com/emergentai/taskify/apps/website/internal/live"
)

// RegisterRoutes mounts the page, health and live endpoints.
func RegisterRoutes(r *chi.Mux, h *Handler, ls *live.Server, cfg *config.Config) {
	r.Get("/", h.LandingPage)
	r.Get("/health", h.Health)

	if cfg.Live.Enabled {
		r.Get(LivePath, ls.HandleWebSocket)
	}
}
