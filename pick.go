package arbor

// PickMask is a bitmask of the pick categories a node takes part in.
// Values can be combined with bitwise OR.
type PickMask uint32

const (
	PickGeometry  PickMask = 1 << iota // exact geometry tests
	PickBounds                         // bounding volume tests
	PickCollision                      // collision queries
	PickCustom                         // application-defined queries
)

// PickAll matches every category.
const PickAll PickMask = ^PickMask(0)

// SetPickMask sets the categories the node is pickable for. A zero mask
// excludes the node from picking.
func (g *Graph) SetPickMask(id NodeID, mask PickMask) error {
	n := g.node(id)
	if err := g.checkWrite(id, n, DataWrite); err != nil {
		return err
	}
	n.pickMask = mask
	return nil
}

// PickMask returns the node's pick mask.
func (g *Graph) PickMask(id NodeID) PickMask { return g.node(id).pickMask }

// CheckPickMask reports whether the node takes part in any of the
// categories in mask.
func (g *Graph) CheckPickMask(id NodeID, mask PickMask) bool {
	return g.node(id).pickMask&mask != 0
}

// PickableBounds returns the bounds a picker tests the node against.
// Reading them from a live node is only legal while the update handler
// permits picking.
func (g *Graph) PickableBounds(id NodeID) (BoundingVolume, error) {
	n := g.node(id)
	if err := g.checkPick(id, n); err != nil {
		return VoidBounds(), err
	}
	return g.Bounds(id), nil
}
