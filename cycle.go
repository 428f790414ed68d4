package arbor

import "fmt"

// CheckCyclicChild reports whether adding child under parent would close
// a cycle. It walks down from child and fails with
// ErrCyclicGraphStructure if it reaches parent, including the case
// child == parent. Identity is by NodeID.
func (g *Graph) CheckCyclicChild(parent, child NodeID) error {
	seen := make(map[NodeID]struct{})
	if g.reachesDown(child, parent, seen) {
		return fmt.Errorf("%w: %s is an ancestor of (or equal to) %s", ErrCyclicGraphStructure, child, parent)
	}
	return nil
}

// CheckCyclicParent is the upward form of CheckCyclicChild. It walks up
// from parent through every registered parent and fails with
// ErrCyclicGraphStructure if it reaches child.
func (g *Graph) CheckCyclicParent(child, parent NodeID) error {
	seen := make(map[NodeID]struct{})
	if g.reachesUp(parent, child, seen) {
		return fmt.Errorf("%w: %s is an ancestor of (or equal to) %s", ErrCyclicGraphStructure, child, parent)
	}
	return nil
}

// reachesDown reports whether target is from or one of its descendants.
// Shared sub-graphs are entered once.
func (g *Graph) reachesDown(from, target NodeID, seen map[NodeID]struct{}) bool {
	if from == target {
		return true
	}
	if _, ok := seen[from]; ok {
		return false
	}
	seen[from] = struct{}{}
	for _, c := range g.node(from).children {
		if g.reachesDown(c, target, seen) {
			return true
		}
	}
	return false
}

// reachesUp reports whether target is from or one of its ancestors,
// following every parent of multi-parent nodes.
func (g *Graph) reachesUp(from, target NodeID, seen map[NodeID]struct{}) bool {
	if from == target {
		return true
	}
	if _, ok := seen[from]; ok {
		return false
	}
	seen[from] = struct{}{}
	for _, p := range g.node(from).parents {
		if g.reachesUp(p, target, seen) {
			return true
		}
	}
	return false
}
