// Package frame sequences the per-frame update phases of an arbor graph.
//
// A [Manager] is the graph's update handler. Application code never
// writes to live nodes directly; it queues a callback for the node, and
// the manager runs it inside the matching phase of the next [Manager.Frame]:
//
//	m := frame.New(g)
//	m.BoundsChanged(box, func(g *arbor.Graph, id arbor.NodeID) error {
//		return g.SetVertices(id, coords, n)
//	})
//	err := m.Frame(ctx, dt)
//
// Resource owners of nodes that stop being live are released after the
// render hook returns, never while it may still draw them.
package frame

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/phanxgames/arbor"
)

const tracerName = "github.com/phanxgames/arbor/frame"

// Callback changes node id of g. It runs inside the phase it was queued
// for and may only write to id.
type Callback func(g *arbor.Graph, id arbor.NodeID) error

// PickFunc reads pick data from g during the pick phase.
type PickFunc func(ctx context.Context, g *arbor.Graph) error

// RenderFunc draws the graph. It runs after every callback, with the
// graph consistent and closed to writes.
type RenderFunc func(ctx context.Context, g *arbor.Graph) error

type request struct {
	id arbor.NodeID
	fn Callback
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default is slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithMetrics records frame metrics into mt.
func WithMetrics(mt *Metrics) Option {
	return func(m *Manager) { m.metrics = mt }
}

// WithTracer sets the tracer frames and phases are traced with. The
// default comes from the global otel tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(m *Manager) { m.tracer = t }
}

// WithRenderer sets the render hook.
func WithRenderer(fn RenderFunc) Option {
	return func(m *Manager) { m.render = fn }
}

// Manager owns the frame loop of one graph and implements
// arbor.UpdateHandler for it. It is not safe for concurrent use.
type Manager struct {
	g *arbor.Graph

	phase   arbor.Phase
	current arbor.NodeID

	bounds []request
	data   []request
	picks  []PickFunc
	tweens []*Tween

	render   RenderFunc
	deferred []arbor.ResourceOwner

	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// New creates a manager for g and attaches it as g's update handler.
func New(g *arbor.Graph, opts ...Option) *Manager {
	m := &Manager{
		g:      g,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.tracer == nil {
		m.tracer = otel.Tracer(tracerName)
	}
	g.SetUpdateHandler(m)
	return m
}

// Graph returns the managed graph.
func (m *Manager) Graph() *arbor.Graph { return m.g }

// Phase reports the phase currently running.
func (m *Manager) Phase() arbor.Phase { return m.phase }

// IsDataWritePermitted implements arbor.UpdateHandler. Only the node
// whose data callback is running may be written.
func (m *Manager) IsDataWritePermitted(id arbor.NodeID) bool {
	return m.phase == arbor.PhaseDataChanged && id == m.current
}

// IsBoundsWritePermitted implements arbor.UpdateHandler. Only the node
// whose bounds callback is running may be written.
func (m *Manager) IsBoundsWritePermitted(id arbor.NodeID) bool {
	return m.phase == arbor.PhaseBoundsChanged && id == m.current
}

// IsPickingPermitted implements arbor.UpdateHandler.
func (m *Manager) IsPickingPermitted() bool {
	return m.phase == arbor.PhasePick
}

// RequestDeletion implements arbor.UpdateHandler. The owner is released
// at the end of the current or next frame, after rendering.
func (m *Manager) RequestDeletion(owner arbor.ResourceOwner) {
	m.deferred = append(m.deferred, owner)
}

// Pending returns the number of owners awaiting release.
func (m *Manager) Pending() int { return len(m.deferred) }

// BoundsChanged queues fn to run for id in the next bounds-changed
// phase. Use it for geometry, transforms and structure.
func (m *Manager) BoundsChanged(id arbor.NodeID, fn Callback) {
	m.bounds = append(m.bounds, request{id: id, fn: fn})
}

// DataChanged queues fn to run for id in the next data-changed phase.
// Use it for colors, attributes and pick masks.
func (m *Manager) DataChanged(id arbor.NodeID, fn Callback) {
	m.data = append(m.data, request{id: id, fn: fn})
}

// Pick queues fn to run in the next pick phase.
func (m *Manager) Pick(fn PickFunc) {
	m.picks = append(m.picks, fn)
}

// Frame runs one frame: tweens and bounds-changed callbacks, bounds
// resolution, data-changed callbacks, pick requests, the render hook
// and finally release of deferred resources.
//
// Callbacks queued while a phase runs are kept for the next frame. A
// failing callback does not stop the others; every error is returned
// joined.
func (m *Manager) Frame(ctx context.Context, dt float32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	ctx, span := m.tracer.Start(ctx, "arbor.frame")
	defer span.End()

	var errs []error
	errs = append(errs, m.runBounds(ctx, dt)...)

	resolved := m.g.ResolveBounds()
	span.SetAttributes(attribute.Int("arbor.resolved_bounds", resolved))
	m.metrics.resolved(resolved)

	errs = append(errs, m.runQueue(ctx, arbor.PhaseDataChanged, &m.data)...)
	errs = append(errs, m.runPicks(ctx)...)

	if m.render != nil {
		rctx, rspan := m.tracer.Start(ctx, "arbor.frame.render")
		if err := m.render(rctx, m.g); err != nil {
			rspan.RecordError(err)
			errs = append(errs, fmt.Errorf("frame: render: %w", err))
		}
		rspan.End()
	}

	released := m.reap()
	span.SetAttributes(attribute.Int("arbor.released", released))

	err := errors.Join(errs...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "frame callbacks failed")
	}
	m.metrics.frame(time.Since(start))
	return err
}

// runBounds advances tweens and runs the queued bounds callbacks.
func (m *Manager) runBounds(ctx context.Context, dt float32) []error {
	ctx, span := m.tracer.Start(ctx, "arbor.frame.bounds")
	defer span.End()

	var errs []error
	active := m.tweens[:0]
	for _, tw := range m.tweens {
		if tw.Done || !m.g.Contains(tw.target) {
			tw.Done = true
			continue
		}
		if err := m.invoke(ctx, arbor.PhaseBoundsChanged, tw.target, tw.apply(dt)); err != nil {
			errs = append(errs, err)
			continue
		}
		if !tw.Done {
			active = append(active, tw)
		}
	}
	clear(m.tweens[len(active):])
	m.tweens = active

	q := m.bounds
	m.bounds = nil
	for _, r := range q {
		if err := m.invoke(ctx, arbor.PhaseBoundsChanged, r.id, r.fn); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// runQueue drains the queue in the given phase.
func (m *Manager) runQueue(ctx context.Context, phase arbor.Phase, queue *[]request) []error {
	ctx, span := m.tracer.Start(ctx, "arbor.frame."+phase.String())
	defer span.End()

	q := *queue
	*queue = nil
	var errs []error
	for _, r := range q {
		if err := m.invoke(ctx, phase, r.id, r.fn); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (m *Manager) runPicks(ctx context.Context) []error {
	if len(m.picks) == 0 {
		return nil
	}
	ctx, span := m.tracer.Start(ctx, "arbor.frame.pick")
	defer span.End()

	q := m.picks
	m.picks = nil
	m.phase = arbor.PhasePick
	defer func() { m.phase = arbor.PhaseIdle }()

	var errs []error
	for _, fn := range q {
		m.metrics.callback(arbor.PhasePick)
		if err := fn(ctx, m.g); err != nil {
			m.metrics.callbackError(arbor.PhasePick)
			errs = append(errs, fmt.Errorf("frame: pick: %w", err))
		}
	}
	return errs
}

// invoke runs fn for id with writes to id opened for phase.
func (m *Manager) invoke(ctx context.Context, phase arbor.Phase, id arbor.NodeID, fn Callback) error {
	if !m.g.Contains(id) {
		m.logger.Warn("frame: callback for destroyed node dropped", "node", id, "phase", phase)
		return nil
	}
	m.phase, m.current = phase, id
	defer func() { m.phase, m.current = arbor.PhaseIdle, arbor.Nil }()

	m.metrics.callback(phase)
	if err := fn(m.g, id); err != nil {
		m.metrics.callbackError(phase)
		m.logger.DebugContext(ctx, "frame: callback failed", "node", id, "phase", phase, "error", err)
		return fmt.Errorf("frame: %s callback for %s: %w", phase, id, err)
	}
	return nil
}

// reap releases every deferred owner and returns how many there were.
func (m *Manager) reap() int {
	n := len(m.deferred)
	for i, o := range m.deferred {
		o.ReleaseResources()
		m.deferred[i] = nil
	}
	m.deferred = m.deferred[:0]
	m.metrics.released(n)
	return n
}
