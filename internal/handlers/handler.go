package handlers

import (
	"log/slog"
	"time"

	"github.com/emergentai/taskify/apps/website/internal/config"
	"github.com/emergentai/taskify/apps/website/internal/content"
	"github.com/emergentai/taskify/apps/website/internal/logger"
)

// Handler serves the landing page and the health check.
type Handler struct {
	site    *content.Site
	cfg     *config.Config
	log     *slog.Logger
	startAt time.Time
}

func NewHandler(site *content.Site, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		site:    site,
		cfg:     cfg,
		log:     log.With(logger.Scope("handlers")),
		startAt: time.Now(),
	}
}
