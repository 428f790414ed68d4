package arbor

import "fmt"

// SetVertices replaces the geometry of a shape with the first count xyz
// triplets of coords. The data is copied. It is a bounds write: the
// shape's implicit bounds and those of its ancestors are recomputed.
//
// coords must hold at least 3*count values.
func (g *Graph) SetVertices(id NodeID, coords []float32, count int) error {
	n := g.node(id)
	if n.typ != NodeShape {
		return fmt.Errorf("%w: %s %s has no geometry", ErrIllegalArgument, n.typ, id)
	}
	if count < 0 || len(coords) < 3*count {
		return fmt.Errorf("%w: vertex buffer holds %d values, need %d", ErrIllegalArgument, len(coords), 3*count)
	}
	if err := g.checkWrite(id, n, BoundsWrite); err != nil {
		return err
	}
	n.coords = append(n.coords[:0], coords[:3*count]...)
	n.vertexCount = count
	if count == 0 {
		n.colors = n.colors[:0]
		n.colorComponents = 0
	} else if need := n.colorComponents * count; len(n.colors) > need {
		n.colors = n.colors[:need]
	}
	n.boundsDirty = true
	g.updateBounds(id)
	return nil
}

// Vertices returns the shape's xyz coordinates.
// The returned slice MUST NOT be mutated by the caller.
func (g *Graph) Vertices(id NodeID) []float32 { return g.node(id).coords }

// VertexCount returns the number of vertices of a shape.
func (g *Graph) VertexCount(id NodeID) int { return g.node(id).vertexCount }

// SetColors replaces the per-vertex colors of a shape. components is 3
// for RGB or 4 for RGBA, and colors must hold components values per
// vertex. Colors never affect bounds, so this is a data write.
func (g *Graph) SetColors(id NodeID, colors []float32, components int) error {
	n := g.node(id)
	if n.typ != NodeShape {
		return fmt.Errorf("%w: %s %s has no geometry", ErrIllegalArgument, n.typ, id)
	}
	if components != 3 && components != 4 {
		return fmt.Errorf("%w: %d color components, want 3 or 4", ErrIllegalArgument, components)
	}
	need := components * n.vertexCount
	if len(colors) < need {
		return fmt.Errorf("%w: color buffer holds %d values, need %d", ErrIllegalArgument, len(colors), need)
	}
	if err := g.checkWrite(id, n, DataWrite); err != nil {
		return err
	}
	n.colors = append(n.colors[:0], colors[:need]...)
	n.colorComponents = components
	return nil
}

// Colors returns the shape's per-vertex colors and the number of
// components per vertex. The returned slice MUST NOT be mutated.
func (g *Graph) Colors(id NodeID) ([]float32, int) {
	n := g.node(id)
	return n.colors, n.colorComponents
}
