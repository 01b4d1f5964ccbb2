package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"manshurat/internal/ports/events"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "manshurat",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "manshurat",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path"},
	)

	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "manshurat",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Interaction events handed to the publisher, by kind.",
		},
		[]string{"kind"},
	)

	publishFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "manshurat",
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Batches the publisher rejected.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		eventsPublished,
		publishFailures,
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// CountingPublisher wraps a Publisher and counts what passes through it.
type CountingPublisher struct {
	Next events.Publisher
}

var _ events.Publisher = (*CountingPublisher)(nil)

func InstrumentPublisher(next events.Publisher) *CountingPublisher {
	return &CountingPublisher{Next: next}
}

func (p *CountingPublisher) Publish(ctx context.Context, batch []events.Event) error {
	if err := p.Next.Publish(ctx, batch); err != nil {
		publishFailures.Inc()
		return err
	}
	for _, evt := range batch {
		eventsPublished.WithLabelValues(string(evt.Kind)).Inc()
	}
	return nil
}
