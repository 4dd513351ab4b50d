// Package metrics exposes the session and notification counters to Prometheus.
package metrics

import (
	"net/http"

	"dashboard/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashboard"

// Collector implements service.MetricsRecorder with Prometheus counters.
type Collector struct {
	profileCacheHits    prometheus.Counter
	profileCacheMisses  prometheus.Counter
	profileFallbacks    *prometheus.CounterVec
	subscriptionsOpened prometheus.Counter
	subscriptionsDrops  prometheus.Counter
	delivered           *prometheus.CounterVec
	markReadFailures    prometheus.Counter
}

var _ service.MetricsRecorder = (*Collector)(nil)

// NewCollector registers the dashboard counters on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		profileCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_cache_hits_total",
			Help:      "Profile resolutions served from the cache.",
		}),
		profileCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_cache_misses_total",
			Help:      "Profile resolutions that went to the profile store.",
		}),
		profileFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_fallbacks_total",
			Help:      "Resolutions that fell back to the default profile, by reason.",
		}, []string{"reason"}),
		subscriptionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_subscriptions_opened_total",
			Help:      "Push channel subscriptions opened.",
		}),
		subscriptionsDrops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_subscriptions_dropped_total",
			Help:      "Push channel subscriptions ended by a transport failure.",
		}),
		delivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_delivered_total",
			Help:      "Push events merged into the local event set, by kind.",
		}, []string{"kind"}),
		markReadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_mark_read_failures_total",
			Help:      "Read mutations rejected by the notification store.",
		}),
	}

	reg.MustRegister(
		c.profileCacheHits,
		c.profileCacheMisses,
		c.profileFallbacks,
		c.subscriptionsOpened,
		c.subscriptionsDrops,
		c.delivered,
		c.markReadFailures,
	)

	return c
}

func (c *Collector) RecordProfileCacheHit()  { c.profileCacheHits.Inc() }
func (c *Collector) RecordProfileCacheMiss() { c.profileCacheMisses.Inc() }

func (c *Collector) RecordProfileFallback(reason string) {
	c.profileFallbacks.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordSubscriptionOpened()  { c.subscriptionsOpened.Inc() }
func (c *Collector) RecordSubscriptionDropped() { c.subscriptionsDrops.Inc() }

func (c *Collector) RecordNotificationDelivered(kind string) {
	c.delivered.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordMarkReadFailure() { c.markReadFailures.Inc() }

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRegistry returns a registry pre-loaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}
