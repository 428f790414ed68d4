package arbor

import "fmt"

// Bounds returns the node's bounding volume. Implicit bounds that were
// marked dirty are recomputed first.
func (g *Graph) Bounds(id NodeID) BoundingVolume {
	n := g.node(id)
	if n.implicit && n.boundsDirty {
		g.recomputeBounds(n)
		n.boundsDirty = false
	}
	return n.bounds
}

// IsImplicitBounds reports whether the node's bounds are computed from
// its content rather than set explicitly.
func (g *Graph) IsImplicitBounds(id NodeID) bool { return g.node(id).implicit }

// IsBoundsDirty reports whether the node's implicit bounds await
// recomputation.
func (g *Graph) IsBoundsDirty(id NodeID) bool {
	n := g.node(id)
	return n.implicit && n.boundsDirty
}

// SetBounds fixes the node's bounds to bv. Explicit bounds are never
// recomputed from content; parents are updated immediately.
func (g *Graph) SetBounds(id NodeID, bv BoundingVolume) error {
	n := g.node(id)
	if err := g.checkWrite(id, n, BoundsWrite); err != nil {
		return err
	}
	n.bounds = bv
	n.implicit = false
	n.boundsDirty = false
	g.updateParents(id)
	return nil
}

// SetImplicitBounds switches the node back to bounds computed from its
// content and recomputes them.
func (g *Graph) SetImplicitBounds(id NodeID) error {
	n := g.node(id)
	if err := g.checkWrite(id, n, BoundsWrite); err != nil {
		return err
	}
	if n.implicit {
		return nil
	}
	n.implicit = true
	n.boundsDirty = true
	g.updateBounds(id)
	return nil
}

// UpdateBounds recomputes the node's implicit bounds and walks every
// registered parent. Use it after changing content the graph cannot
// observe itself.
func (g *Graph) UpdateBounds(id NodeID) error {
	n := g.node(id)
	if err := g.checkWrite(id, n, BoundsWrite); err != nil {
		return err
	}
	n.boundsDirty = true
	g.updateBounds(id)
	return nil
}

// MarkBoundsDirty flags every ancestor of the node as needing a bounds
// refresh without recomputing anything. The refresh happens on the
// next Bounds or ResolveBounds call.
func (g *Graph) MarkBoundsDirty(id NodeID) error {
	n := g.node(id)
	if err := g.checkWrite(id, n, BoundsWrite); err != nil {
		return err
	}
	g.markBoundsDirty(id)
	return nil
}

// ResolveBounds recomputes every dirty implicit bounding volume and
// returns how many nodes were refreshed. An update handler calls it at
// the end of the bounds-changed phase so traversal never observes a
// stale volume.
func (g *Graph) ResolveBounds() int {
	count := 0
	for i := range g.slots {
		if n := &g.slots[i]; n.inUse && n.implicit && n.boundsDirty {
			count++
		}
	}
	if count == 0 {
		return 0
	}
	// Resolving a node resolves its dirty descendants on the way, so
	// later slots may already be clean.
	for i := range g.slots {
		n := &g.slots[i]
		if n.inUse && n.implicit && n.boundsDirty {
			g.Bounds(makeID(i, n.gen))
		}
	}
	return count
}

// updateBounds recomputes implicit bounds of id and recurses into every
// parent, depth first. A node reached along several paths is visited
// once per path. The walk stops at nodes whose bounds are explicit or
// came out unchanged, since their ancestors need no further work.
func (g *Graph) updateBounds(id NodeID) {
	n := g.node(id)
	g.emit(GraphEvent{Type: EventBoundsUpdated, Node: id})
	if !n.implicit {
		return
	}
	prev := n.bounds
	wasDirty := n.boundsDirty
	g.recomputeBounds(n)
	n.boundsDirty = false
	if !wasDirty && prev.Equal(n.bounds) {
		return
	}
	g.updateParents(id)
}

func (g *Graph) updateParents(id NodeID) {
	for _, p := range g.node(id).parents {
		g.updateBounds(p)
	}
}

// markBoundsDirty flags the implicit ancestors of id. It stops at
// ancestors already dirty, whose own ancestors were flagged when they
// were.
func (g *Graph) markBoundsDirty(id NodeID) {
	for _, p := range g.node(id).parents {
		pn := g.node(p)
		if !pn.implicit || pn.boundsDirty {
			continue
		}
		pn.boundsDirty = true
		g.markBoundsDirty(p)
	}
}

// recomputeBounds derives n's bounds from its content.
func (g *Graph) recomputeBounds(n *node) {
	switch n.typ {
	case NodeShape:
		n.bounds = BoundsFromPoints(n.coords[:3*n.vertexCount])
	case NodeSharedNode:
		if len(n.children) == 0 {
			n.bounds = VoidBounds()
			return
		}
		n.bounds = g.Bounds(n.children[0])
	case NodeGroup, NodeSwitch, NodeSharedGroup, NodeTransformGroup:
		u := VoidBounds()
		for _, c := range n.children {
			u = u.Union(g.Bounds(c))
		}
		if n.typ == NodeTransformGroup {
			u = u.Transform(n.transform)
		}
		n.bounds = u
	default:
		panic(fmt.Sprintf("arbor: no bounds rule for %s", n.typ))
	}
}
