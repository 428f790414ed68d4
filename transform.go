package arbor

import (
	"fmt"

	"github.com/phanxgames/arbor/linear"
)

// SetTransform sets the local transform of a transform group. Children
// are placed by m, so the group's bounds are its children's union
// transformed by m.
func (g *Graph) SetTransform(id NodeID, m linear.M4) error {
	n := g.node(id)
	if n.typ != NodeTransformGroup {
		return fmt.Errorf("%w: %s %s has no transform", ErrIllegalArgument, n.typ, id)
	}
	if err := g.checkWrite(id, n, BoundsWrite); err != nil {
		return err
	}
	if n.transform == m {
		return nil
	}
	n.transform = m
	n.boundsDirty = true
	g.updateBounds(id)
	return nil
}

// Transform returns the local transform of a transform group. Other
// node types report the identity.
func (g *Graph) Transform(id NodeID) linear.M4 {
	n := g.node(id)
	if n.typ != NodeTransformGroup {
		return linear.I()
	}
	return n.transform
}

// SetActiveChild selects the child a switch renders; -1 selects none.
//
// Switch bounds cover every child, so a toggle changes visibility but
// not size: ancestors are only flagged dirty rather than recomputed.
func (g *Graph) SetActiveChild(id NodeID, index int) error {
	n := g.node(id)
	if n.typ != NodeSwitch {
		return fmt.Errorf("%w: %s %s is not a switch", ErrIllegalArgument, n.typ, id)
	}
	if index < -1 || index >= len(n.children) {
		return fmt.Errorf("%w: active child %d out of range [-1, %d)", ErrIllegalArgument, index, len(n.children))
	}
	if err := g.checkWrite(id, n, BoundsWrite); err != nil {
		return err
	}
	if n.active == index {
		return nil
	}
	n.active = index
	g.markBoundsDirty(id)
	return nil
}

// ActiveChild returns the child index a switch renders, or -1.
func (g *Graph) ActiveChild(id NodeID) int {
	n := g.node(id)
	if n.typ != NodeSwitch {
		return -1
	}
	return n.active
}
