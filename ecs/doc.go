// Package ecs provides ECS adapters for arbor's graph event system.
//
// The primary adapter is [NewDonburiSink], which bridges arbor graph events
// (attach, detach, live, dead, bounds updated) into a [Donburi] world as
// typed events. Subscribe to [GraphEventType] in your ECS systems to receive
// them. Live nodes are also mirrored as entities carrying [LiveNodeComponent].
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	graph.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
