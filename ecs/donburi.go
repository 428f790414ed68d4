package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/arbor"
)

// GraphEventType is the Donburi event type for arbor graph events.
// Subscribe to this in your ECS systems to receive attach, detach,
// liveness and bounds events.
var GraphEventType = events.NewEventType[arbor.GraphEvent]()

// LiveNode is the component carried by the entity mirroring a live
// graph node.
type LiveNode struct {
	ID arbor.NodeID
}

// LiveNodeComponent marks entities mirroring live nodes. Query it to
// iterate everything an active root currently reaches.
var LiveNodeComponent = donburi.NewComponentType[LiveNode]()

// DonburiSink forwards graph events into a Donburi world.
type DonburiSink struct {
	world    donburi.World
	entities map[arbor.NodeID]donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Every
// event is published to GraphEventType and can be consumed with
// events.Subscribe and ProcessEvents. Nodes that become live also get
// an entity carrying LiveNodeComponent, removed again when they die.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{
		world:    world,
		entities: make(map[arbor.NodeID]donburi.Entity),
	}
}

// EmitEvent implements arbor.EventSink.
func (s *DonburiSink) EmitEvent(event arbor.GraphEvent) {
	switch event.Type {
	case arbor.EventLive:
		if _, ok := s.entities[event.Node]; !ok {
			e := s.world.Create(LiveNodeComponent)
			LiveNodeComponent.SetValue(s.world.Entry(e), LiveNode{ID: event.Node})
			s.entities[event.Node] = e
		}
	case arbor.EventDead:
		if e, ok := s.entities[event.Node]; ok {
			s.world.Remove(e)
			delete(s.entities, event.Node)
		}
	}
	GraphEventType.Publish(s.world, event)
}

// Entity returns the entity mirroring node id and whether the node is
// live.
func (s *DonburiSink) Entity(id arbor.NodeID) (donburi.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}
