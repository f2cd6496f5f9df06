package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"coinpulse/internal/core/domain"
)

func TestCounterChanged(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.CounterChanged(domain.CampaignClicks, 1)
	m.CounterChanged(domain.CampaignClicks, 2)
	m.CounterChanged(domain.CampaignClicks, -1)

	got := testutil.ToFloat64(m.CounterIncrementsTotal.WithLabelValues("ad_campaign", "click_count"))
	assert.Equal(t, float64(3), got)
}

func TestStatusSynced(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.StatusSynced(domain.KindAirdrop, 4)
	m.StatusSynced(domain.KindAirdrop, 0)

	assert.Equal(t, float64(4), testutil.ToFloat64(m.StatusSyncTotal.WithLabelValues("airdrop")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"1", "2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/items/{id}", "418")))
}
