package arbor

import "fmt"

// AddChild appends child to parent's children.
//
// The edge is validated before anything changes: parent must hold
// children, be writable for bounds, not already list child, and child
// must not be parent or one of its ancestors. A node may be added under
// any number of distinct parents. If parent is live, child gains one
// liveness grant.
func (g *Graph) AddChild(parent, child NodeID) error {
	return g.InsertChild(parent, child, g.NumChildren(parent))
}

// InsertChild inserts child at the given index of parent's children.
// Same validation and liveness behavior as AddChild.
func (g *Graph) InsertChild(parent, child NodeID, index int) error {
	p := g.node(parent)
	c := g.node(child)
	if !p.typ.holdsChildren() {
		return fmt.Errorf("%w: %s %s cannot hold children", ErrIllegalArgument, p.typ, parent)
	}
	if err := g.checkWrite(parent, p, BoundsWrite); err != nil {
		return err
	}
	if index < 0 || index > len(p.children) {
		return fmt.Errorf("%w: child index %d out of range [0, %d]", ErrIllegalArgument, index, len(p.children))
	}
	if indexOf(p.children, child) >= 0 {
		return fmt.Errorf("%w: %s is already a child of %s", ErrIllegalArgument, child, parent)
	}
	if err := g.CheckCyclicChild(parent, child); err != nil {
		return err
	}

	p.children = append(p.children, Nil)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = child
	c.parents = append(c.parents, parent)
	if p.typ == NodeSwitch && p.active >= index {
		p.active++
	}
	live := p.live

	g.emit(GraphEvent{Type: EventAttached, Node: child, Parent: parent})
	if live {
		g.setLive(child, true)
	}
	g.updateBounds(parent)
	if g.debug {
		g.debugCheckTreeDepth(child)
		g.debugCheckChildCount(parent)
	}
	return nil
}

// RemoveChild detaches child from parent. It fails if child is not a
// child of parent.
func (g *Graph) RemoveChild(parent, child NodeID) error {
	p := g.node(parent)
	if err := g.checkWrite(parent, p, BoundsWrite); err != nil {
		return err
	}
	i := indexOf(p.children, child)
	if i < 0 || !p.typ.holdsChildren() {
		return fmt.Errorf("%w: %s is not a child of %s", ErrIllegalArgument, child, parent)
	}
	g.detach(parent, i)
	g.updateBounds(parent)
	return nil
}

// RemoveChildAt detaches and returns the child at the given index.
func (g *Graph) RemoveChildAt(parent NodeID, index int) (NodeID, error) {
	p := g.node(parent)
	if err := g.checkWrite(parent, p, BoundsWrite); err != nil {
		return Nil, err
	}
	if !p.typ.holdsChildren() || index < 0 || index >= len(p.children) {
		return Nil, fmt.Errorf("%w: child index %d out of range [0, %d)", ErrIllegalArgument, index, len(p.children))
	}
	child := g.detach(parent, index)
	g.updateBounds(parent)
	return child, nil
}

// RemoveChildren detaches every child of parent. Children are not
// destroyed.
func (g *Graph) RemoveChildren(parent NodeID) error {
	p := g.node(parent)
	if err := g.checkWrite(parent, p, BoundsWrite); err != nil {
		return err
	}
	if !p.typ.holdsChildren() || len(p.children) == 0 {
		return nil
	}
	for i := len(g.node(parent).children) - 1; i >= 0; i-- {
		g.detach(parent, i)
	}
	g.updateBounds(parent)
	return nil
}

// detach removes the edge from parent to its child at index and
// withdraws the liveness that edge granted. It does not update bounds.
func (g *Graph) detach(parent NodeID, index int) NodeID {
	p := g.node(parent)
	child := p.children[index]
	copy(p.children[index:], p.children[index+1:])
	p.children[len(p.children)-1] = Nil
	p.children = p.children[:len(p.children)-1]
	if p.typ == NodeSwitch {
		switch {
		case p.active == index:
			p.active = -1
		case p.active > index:
			p.active--
		}
	}
	live := p.live

	c := g.node(child)
	c.parents = removeID(c.parents, parent)
	if live {
		g.setLive(child, false)
	}
	g.emit(GraphEvent{Type: EventDetached, Node: child, Parent: parent})
	return child
}

// SetSharedChild makes child the single child of the shared node id,
// replacing any previous child. Nil clears it. The shared node's bounds
// are the child's bounds.
func (g *Graph) SetSharedChild(id, child NodeID) error {
	n := g.node(id)
	if n.typ != NodeSharedNode {
		return fmt.Errorf("%w: %s %s is not a shared node", ErrIllegalArgument, n.typ, id)
	}
	if err := g.checkWrite(id, n, BoundsWrite); err != nil {
		return err
	}
	if len(n.children) == 1 && n.children[0] == child {
		return nil
	}
	if child != Nil {
		g.node(child)
		if err := g.CheckCyclicParent(child, id); err != nil {
			return err
		}
	}

	if len(n.children) == 1 {
		g.detach(id, 0)
	}
	if child != Nil {
		n = g.node(id)
		n.children = append(n.children, child)
		c := g.node(child)
		c.parents = append(c.parents, id)
		live := n.live
		g.emit(GraphEvent{Type: EventAttached, Node: child, Parent: id})
		if live {
			g.setLive(child, true)
		}
	}
	g.updateBounds(id)
	return nil
}

// SharedChild returns the child of a shared node, or Nil.
func (g *Graph) SharedChild(id NodeID) NodeID {
	n := g.node(id)
	if n.typ != NodeSharedNode || len(n.children) == 0 {
		return Nil
	}
	return n.children[0]
}
