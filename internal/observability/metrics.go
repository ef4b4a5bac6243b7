// Package observability exposes Prometheus metrics for the render loop,
// caches and background refresh tasks.
package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the planetarium metrics. A nil *Collector is valid and
// records nothing, so engine packages never need to check for it.
type Collector struct {
	gatherer prometheus.Gatherer

	FrameDuration   prometheus.Histogram
	LayerPrimitives *prometheus.GaugeVec
	TextureRequests *prometheus.CounterVec
	Refreshes       *prometheus.CounterVec
	EventsDropped   *prometheus.CounterVec
}

// NewCollector registers metrics against the provided registerer, defaulting
// to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	frame, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planetarium_frame_duration_seconds",
		Help:    "Time spent composing one scene frame.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.016, 0.033, 0.05, 0.1, 0.25},
	}), "planetarium_frame_duration_seconds")
	if err != nil {
		return nil, err
	}

	prims, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "planetarium_layer_primitives",
		Help: "Primitives emitted by each layer in the last composed frame.",
	}, []string{"layer"}), "planetarium_layer_primitives")
	if err != nil {
		return nil, err
	}

	textures, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planetarium_texture_requests_total",
		Help: "Texture cache lookups, labeled by result (hit, miss, error).",
	}, []string{"result"}), "planetarium_texture_requests_total")
	if err != nil {
		return nil, err
	}

	refreshes, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planetarium_refresh_total",
		Help: "Background refresh runs, labeled by task and result (ok, error).",
	}, []string{"task", "result"}), "planetarium_refresh_total")
	if err != nil {
		return nil, err
	}

	dropped, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planetarium_events_dropped_total",
		Help: "Outbound events dropped because the consumer was not keeping up.",
	}, []string{"kind"}), "planetarium_events_dropped_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		FrameDuration:   frame,
		LayerPrimitives: prims,
		TextureRequests: textures,
		Refreshes:       refreshes,
		EventsDropped:   dropped,
	}, nil
}

// ObserveFrame records the duration of one composed frame.
func (c *Collector) ObserveFrame(d time.Duration) {
	if c == nil {
		return
	}
	c.FrameDuration.Observe(d.Seconds())
}

// SetLayerPrimitives records how many primitives a layer emitted.
func (c *Collector) SetLayerPrimitives(layer string, n int) {
	if c == nil {
		return
	}
	c.LayerPrimitives.WithLabelValues(layer).Set(float64(n))
}

// TextureResult counts a texture cache lookup: "hit", "miss" or "error".
func (c *Collector) TextureResult(result string) {
	if c == nil {
		return
	}
	c.TextureRequests.WithLabelValues(result).Inc()
}

// RefreshResult counts one run of a background refresh task.
func (c *Collector) RefreshResult(task string, err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.Refreshes.WithLabelValues(task, result).Inc()
}

// EventDropped counts an event the bus could not deliver.
func (c *Collector) EventDropped(kind string) {
	if c == nil {
		return
	}
	c.EventsDropped.WithLabelValues(kind).Inc()
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil || c.gatherer == nil {
		return prometheus.DefaultGatherer
	}
	return c.gatherer
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.Gatherer(), promhttp.HandlerOpts{})
}

// Serve runs a /metrics endpoint on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	}
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}
