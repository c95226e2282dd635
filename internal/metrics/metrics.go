package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weighguide"

// Metrics groups the collectors on a private registry, so that several
// servers (and tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	PageViews        prometheus.Counter
	ModalOpens       *prometheus.CounterVec
	ModalDismissals  *prometheus.CounterVec
	ModalRejections  prometheus.Counter
	ContentReloads   *prometheus.CounterVec
	LiveClients      prometheus.Gauge
	RequestDurations *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PageViews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Total number of rendered pages.",
		}),
		ModalOpens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modal_opens_total",
			Help:      "Step detail popups opened, by step ordinal.",
		}, []string{"step"}),
		ModalDismissals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modal_dismissals_total",
			Help:      "Step detail popups dismissed, by trigger.",
		}, []string{"reason"}),
		ModalRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modal_rejections_total",
			Help:      "Requests for a step that has no detail record.",
		}),
		ContentReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_reloads_total",
			Help:      "Content file reload attempts, by result.",
		}, []string{"result"}),
		LiveClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "livereload_clients",
			Help:      "Pages currently connected for live reload.",
		}),
		RequestDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests, by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code"}),
	}

	m.registry.MustRegister(
		m.PageViews,
		m.ModalOpens,
		m.ModalDismissals,
		m.ModalRejections,
		m.ContentReloads,
		m.LiveClients,
		m.RequestDurations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveOpen counts an opened popup for step n.
func (m *Metrics) ObserveOpen(n int) {
	m.ModalOpens.WithLabelValues(strconv.Itoa(n)).Inc()
}

// ObserveDismiss counts a dismissal with the given reason name.
func (m *Metrics) ObserveDismiss(reason string) {
	m.ModalDismissals.WithLabelValues(reason).Inc()
}

// ObserveReload counts a reload attempt.
func (m *Metrics) ObserveReload(err error) {
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	m.ContentReloads.WithLabelValues(result).Inc()
}
