package arbor

import "fmt"

// EventType identifies a kind of graph event.
type EventType uint8

const (
	EventAttached      EventType = iota // an edge from Parent to Node was added
	EventDetached                       // an edge from Parent to Node was removed
	EventLive                           // Node became live
	EventDead                           // Node stopped being live
	EventBoundsUpdated                  // the bounds walker visited Node
)

func (t EventType) String() string {
	switch t {
	case EventAttached:
		return "attached"
	case EventDetached:
		return "detached"
	case EventLive:
		return "live"
	case EventDead:
		return "dead"
	case EventBoundsUpdated:
		return "bounds-updated"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// GraphEvent describes one structural, liveness or bounds change.
type GraphEvent struct {
	Type   EventType
	Node   NodeID
	Parent NodeID // set for EventAttached and EventDetached
}

// EventSink receives graph events as they happen, for example to feed
// an ECS or an editor. EmitEvent is called synchronously from inside
// graph operations and must not mutate the graph.
type EventSink interface {
	EmitEvent(event GraphEvent)
}

// SetEventSink sets the optional event receiver. Nil disables events.
func (g *Graph) SetEventSink(sink EventSink) {
	g.sink = sink
}

func (g *Graph) emit(ev GraphEvent) {
	if g.sink != nil {
		g.sink.EmitEvent(ev)
	}
}
