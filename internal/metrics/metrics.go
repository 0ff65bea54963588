// Package metrics declares the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_page_renders_total",
		Help: "Total number of landing page renders",
	}, []string{"status"})

	LiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "website_live_sessions_active",
		Help: "Number of open live sessions",
	})

	LiveSessionsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "website_live_sessions_rejected_total",
		Help: "Live session upgrades refused by the admission limiter",
	})

	LiveMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_live_messages_total",
		Help: "Inbound live session messages by type",
	}, []string{"type"})

	SlidesMounted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_carousel_slides_mounted_total",
		Help: "Carousel entries mounted, by where the mount happened",
	}, []string{"phase"})

	ScrollSamples = promauto.NewCounter(prometheus.CounterOpts{
		Name: "website_navbar_scroll_samples_total",
		Help: "Scroll samples applied to navbar controllers",
	})
)

// Mount phases
const (
	PhaseRender = "render"
	PhaseLive   = "live"
)
