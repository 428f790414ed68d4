package frame

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phanxgames/arbor"
)

// Metrics bundles the Prometheus collectors a Manager records into.
// A nil *Metrics records nothing.
type Metrics struct {
	Frames         prometheus.Counter
	FrameDuration  prometheus.Histogram
	Callbacks      *prometheus.CounterVec
	CallbackErrors *prometheus.CounterVec
	ResolvedBounds prometheus.Counter
	Released       prometheus.Counter
}

// NewMetrics registers frame metrics against reg, defaulting to the
// global Prometheus registry when nil. Collectors already registered by
// an earlier call are reused.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	frames, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_total",
		Help:      "Total number of frames run.",
	}), "frames_total")
	if err != nil {
		return nil, err
	}
	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "frame_duration_seconds",
		Help:      "Time spent in Frame, including the render hook.",
		Buckets:   []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033, 0.066, 0.1, 0.25},
	}), "frame_duration_seconds")
	if err != nil {
		return nil, err
	}
	callbacks, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "callbacks_total",
		Help:      "Total number of callbacks run, labeled by phase.",
	}, []string{"phase"}), "callbacks_total")
	if err != nil {
		return nil, err
	}
	callbackErrors, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "callback_errors_total",
		Help:      "Total number of callbacks that returned an error, labeled by phase.",
	}, []string{"phase"}), "callback_errors_total")
	if err != nil {
		return nil, err
	}
	resolved, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolved_bounds_total",
		Help:      "Total number of dirty bounding volumes recomputed at the end of the bounds phase.",
	}), "resolved_bounds_total")
	if err != nil {
		return nil, err
	}
	released, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "released_resources_total",
		Help:      "Total number of resource owners released after rendering.",
	}), "released_resources_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		Frames:         frames,
		FrameDuration:  duration,
		Callbacks:      callbacks,
		CallbackErrors: callbackErrors,
		ResolvedBounds: resolved,
		Released:       released,
	}, nil
}

func (mt *Metrics) frame(d time.Duration) {
	if mt == nil {
		return
	}
	mt.Frames.Inc()
	mt.FrameDuration.Observe(d.Seconds())
}

func (mt *Metrics) callback(phase arbor.Phase) {
	if mt == nil {
		return
	}
	mt.Callbacks.WithLabelValues(phase.String()).Inc()
}

func (mt *Metrics) callbackError(phase arbor.Phase) {
	if mt == nil {
		return
	}
	mt.CallbackErrors.WithLabelValues(phase.String()).Inc()
}

func (mt *Metrics) resolved(n int) {
	if mt == nil {
		return
	}
	mt.ResolvedBounds.Add(float64(n))
}

func (mt *Metrics) released(n int) {
	if mt == nil {
		return
	}
	mt.Released.Add(float64(n))
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
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
