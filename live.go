package arbor

// Activate grants liveness to root as if it had been attached under an
// actively traversed parent. Every node reachable from root becomes
// live and subject to write-timing checks. Activation is counted: each
// Activate needs a matching Deactivate.
func (g *Graph) Activate(root NodeID) {
	g.node(root).activations++
	g.setLive(root, true)
}

// Deactivate withdraws one grant made by Activate. Grants held through
// live parents are untouched, so deactivating a node that was never
// activated does nothing.
func (g *Graph) Deactivate(root NodeID) {
	n := g.node(root)
	if n.activations == 0 {
		return
	}
	n.activations--
	g.setLive(root, false)
}

// IsLive reports whether the node is reachable from an active root.
func (g *Graph) IsLive(id NodeID) bool { return g.node(id).live }

// LiveCount returns the number of liveness grants the node holds: one
// per live parent edge plus one per Activate.
func (g *Graph) LiveCount(id NodeID) int { return g.node(id).liveCount }

// SetResourceOwner records the per-context rendering state of a node.
// When the node stops being live the owner is handed to the update
// handler for deferred release.
func (g *Graph) SetResourceOwner(id NodeID, owner ResourceOwner) {
	g.node(id).owner = owner
}

// ResourceOwner returns the owner set by SetResourceOwner, or nil.
func (g *Graph) ResourceOwner(id NodeID) ResourceOwner {
	return g.node(id).owner
}

// setLive adds (state true) or withdraws (state false) one liveness
// grant. Only the transitions between zero and one grants propagate to
// children; a redundant grant to a live node and a withdrawal from a
// node with no grants change nothing beyond the counter.
func (g *Graph) setLive(id NodeID, state bool) {
	n := g.node(id)
	if state {
		n.liveCount++
		if n.live {
			return
		}
		n.live = true
		for _, c := range n.children {
			g.setLive(c, true)
		}
		if g.debug {
			g.logger.Debug("arbor: node live", "node", id, "type", n.typ)
		}
		g.emit(GraphEvent{Type: EventLive, Node: id})
		return
	}

	if n.liveCount == 0 {
		return
	}
	n.liveCount--
	if n.liveCount > 0 {
		return
	}
	n.live = false
	for _, c := range n.children {
		g.setLive(c, false)
	}
	g.releaseResources(n)
	if g.debug {
		g.logger.Debug("arbor: node dead", "node", id, "type", n.typ)
	}
	g.emit(GraphEvent{Type: EventDead, Node: id})
}

// releaseResources hands every resource owner of a node that just died
// to the update handler. Without a handler nothing can be rendering the
// node, so owners are released immediately.
func (g *Graph) releaseResources(n *node) {
	release := func(o ResourceOwner) {
		if o == nil {
			return
		}
		if g.handler != nil {
			g.handler.RequestDeletion(o)
			return
		}
		o.ReleaseResources()
	}
	release(n.owner)
	if n.attrSet&(1<<AttrShader) != 0 {
		release(n.attrs[AttrShader].Program)
	}
}
