package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"coinpulse/internal/core/domain"
)

// Metrics holds the service counters exported on /metrics.
type Metrics struct {
	CounterIncrementsTotal *prometheus.CounterVec
	StatusSyncTotal        *prometheus.CounterVec
	HTTPRequestsTotal      *prometheus.CounterVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CounterIncrementsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinpulse_counter_increments_total",
				Help: "Committed increments of entity counters",
			},
			[]string{"entity", "field"},
		),
		StatusSyncTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinpulse_status_sync_total",
				Help: "Stored statuses rewritten by the status sync job",
			},
			[]string{"entity"},
		),
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinpulse_http_requests_total",
				Help: "HTTP requests by route pattern and status code",
			},
			[]string{"route", "code"},
		),
	}
}

// CounterChanged implements port.CounterObserver. Decrements are not
// exported.
func (m *Metrics) CounterChanged(c domain.Counter, delta int64) {
	if delta <= 0 {
		return
	}
	m.CounterIncrementsTotal.WithLabelValues(c.Entity, c.Column).Add(float64(delta))
}

// StatusSynced records n rows rewritten for kind.
func (m *Metrics) StatusSynced(kind domain.Kind, n int64) {
	if n <= 0 {
		return
	}
	m.StatusSyncTotal.WithLabelValues(string(kind)).Add(float64(n))
}

// Middleware counts requests per chi route pattern. It must run inside the
// router so the pattern is known once the handler returns.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		m.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	})
}
