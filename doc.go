// Package arbor is the core of a retained-mode 3D scene graph.
//
// Arbor keeps the graph itself: nodes, the multi-parent edges between
// them, their bounding volumes and the rules for when live nodes may
// be changed. Rendering, picking and the frame loop live elsewhere and
// talk to the graph through an [UpdateHandler].
//
// # Quick start
//
// Build the graph offline, then activate its root:
//
//	g := arbor.NewGraph()
//	root := g.NewGroup("root")
//	box := g.NewShape("box")
//	g.SetVertices(box, coords, len(coords)/3)
//	g.AddChild(root, box)
//
//	g.SetUpdateHandler(manager)
//	g.Activate(root)
//
// # Graph
//
// Nodes are owned by a [Graph] and referred to by [NodeID]. A node may
// be attached under any number of parents, so the graph is a directed
// acyclic graph rather than a tree. [Graph.AddChild] refuses edges
// that would close a cycle with [ErrCyclicGraphStructure].
//
// Node types are [NodeGroup], [NodeTransformGroup], [NodeSwitch],
// [NodeSharedGroup], [NodeSharedNode] and [NodeShape].
//
// # Liveness and write timing
//
// A node is live while it is reachable from an activated root. Live
// nodes may only be changed when the update handler permits it:
// geometry and structure inside its bounds-changed window, colors and
// attributes inside its data-changed window. Anything else fails with
// [ErrInvalidWriteTiming]. Nodes that are not live accept every write.
//
// When a node stops being live, its [ResourceOwner] is handed to
// [UpdateHandler.RequestDeletion] so render-side state is released
// after the renderer is done with it.
//
// # Bounds
//
// Every node has a [BoundingVolume], either void or an axis-aligned
// box. Implicit bounds are recomputed from content, and changes are
// propagated to every parent. [BoundingVolume] also answers ray,
// segment, sphere, triangle, box and frustum queries.
//
// # Events
//
// An optional [EventSink] receives attach, detach, liveness and bounds
// events. The ECS bridge in arbor/ecs forwards them into a [Donburi]
// world.
//
// [Donburi]: https://github.com/yohamta/donburi
package arbor
