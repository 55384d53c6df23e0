package trails

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/binarytrails/trails/content"
)

// metrics are registered on a per-App registry so several apps (tests)
// can coexist in one process.
type metrics struct {
	pageRenders    *prometheus.CounterVec
	contentReloads *prometheus.CounterVec
	contentPosts   prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		pageRenders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trails_page_renders_total",
				Help: "Pages rendered, by page kind.",
			},
			[]string{"page"},
		),
		contentReloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trails_content_reloads_total",
				Help: "Content reloads, by result (ok or error).",
			},
			[]string{"result"},
		),
		contentPosts: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "trails_content_posts",
				Help: "Published posts in the current content snapshot.",
			},
		),
	}
	reg.MustRegister(m.pageRenders, m.contentReloads, m.contentPosts)
	return m
}

func (m *metrics) observeReload(snap *content.Snapshot, err error) {
	if err != nil {
		m.contentReloads.WithLabelValues("error").Inc()
		return
	}
	m.contentReloads.WithLabelValues("ok").Inc()
	m.contentPosts.Set(float64(len(snap.Posts)))
}
