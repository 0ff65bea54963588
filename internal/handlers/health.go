package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/emergentai/taskify/apps/website/internal/version"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   version.Info     `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]Check{
		"content": h.contentCheck(),
		"live":    {Status: "healthy", Message: liveMessage(h.cfg.Live.Enabled)},
	}

	status := "healthy"
	code := http.StatusOK
	for _, c := range checks {
		if c.Status != "healthy" {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Current(),
		Checks:    checks,
	})
}

func (h *Handler) contentCheck() Check {
	if err := h.site.Validate(); err != nil {
		return Check{Status: "unhealthy", Message: err.Error()}
	}
	return Check{Status: "healthy", Message: strconv.Itoa(len(h.site.Testimonials.Items)) + " testimonials"}
}

func liveMessage(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
