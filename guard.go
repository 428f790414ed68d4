package arbor

import "fmt"

// Phase is the stage of a frame as reported by an update handler.
// The graph never drives phases itself; it only asks the handler
// whether a write is legal right now.
type Phase uint8

const (
	PhaseIdle          Phase = iota // no callbacks running; traversal may be reading the graph
	PhaseDataChanged                // data-changed callbacks are running
	PhaseBoundsChanged              // bounds-changed callbacks are running
	PhasePick                       // pick requests are being served
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDataChanged:
		return "data-changed"
	case PhaseBoundsChanged:
		return "bounds-changed"
	case PhasePick:
		return "pick"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// WriteKind classifies a mutation for the write-timing check.
type WriteKind uint8

const (
	// DataWrite changes state that does not affect bounds, such as
	// vertex colors or attributes.
	DataWrite WriteKind = iota
	// BoundsWrite changes state that invalidates bounds: geometry,
	// transforms, explicit bounds and child lists.
	BoundsWrite
)

func (k WriteKind) String() string {
	switch k {
	case DataWrite:
		return "data"
	case BoundsWrite:
		return "bounds"
	default:
		return fmt.Sprintf("WriteKind(%d)", uint8(k))
	}
}

// ResourceOwner holds per-context rendering state for a node, such as
// uploaded buffers or compiled programs. Its resources must be released
// on the render side once the owner is no longer live.
type ResourceOwner interface {
	ReleaseResources()
}

// UpdateHandler gates mutation of live nodes. It is owned by whatever
// sequences the frame: the graph consults it, it never calls back into
// phase logic.
type UpdateHandler interface {
	// IsDataWritePermitted reports whether a data write to id is legal now.
	IsDataWritePermitted(id NodeID) bool
	// IsBoundsWritePermitted reports whether a bounds write to id is legal now.
	IsBoundsWritePermitted(id NodeID) bool
	// IsPickingPermitted reports whether pick data may be read now.
	IsPickingPermitted() bool
	// RequestDeletion queues owner for release once the render side is
	// done with it. It is called once per transition to not live.
	RequestDeletion(owner ResourceOwner)
}

// PhaseReporter is optionally implemented by an UpdateHandler to name
// its current phase in timing errors.
type PhaseReporter interface {
	Phase() Phase
}

// SetUpdateHandler attaches h to the graph. A nil handler permits every
// write, which is the offline construction mode. Without a handler the
// resources of nodes that stop being live are released synchronously,
// so a renderer must attach one before drawing from another goroutine
// or across a frame.
func (g *Graph) SetUpdateHandler(h UpdateHandler) {
	g.handler = h
}

// UpdateHandler returns the attached handler, or nil.
func (g *Graph) UpdateHandler() UpdateHandler {
	return g.handler
}

// checkWrite rejects a write of the given kind to a live node when the
// handler does not permit it. Nodes that are not live, and graphs
// without a handler, accept every write.
func (g *Graph) checkWrite(id NodeID, n *node, kind WriteKind) error {
	if !n.live || g.handler == nil {
		return nil
	}
	var ok bool
	switch kind {
	case DataWrite:
		ok = g.handler.IsDataWritePermitted(id)
	case BoundsWrite:
		ok = g.handler.IsBoundsWritePermitted(id)
	}
	if ok {
		return nil
	}
	if pr, isPR := g.handler.(PhaseReporter); isPR {
		return fmt.Errorf("%w: %s write to %s %s during %s phase",
			ErrInvalidWriteTiming, kind, n.typ, id, pr.Phase())
	}
	return fmt.Errorf("%w: %s write to %s %s", ErrInvalidWriteTiming, kind, n.typ, id)
}

// checkPick rejects reading pick data of a live node outside the
// handler's pick window.
func (g *Graph) checkPick(id NodeID, n *node) error {
	if !n.live || g.handler == nil || g.handler.IsPickingPermitted() {
		return nil
	}
	return fmt.Errorf("%w: %s %s", ErrInvalidPickTiming, n.typ, id)
}
