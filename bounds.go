package arbor

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/phanxgames/arbor/linear"
)

// BoundsKind distinguishes the variants of a BoundingVolume.
type BoundsKind uint8

const (
	BoundsVoid BoundsKind = iota // no bounds; excluded from every spatial test
	BoundsBox                    // axis-aligned box
)

func (k BoundsKind) String() string {
	switch k {
	case BoundsVoid:
		return "void"
	case BoundsBox:
		return "box"
	default:
		return fmt.Sprintf("BoundsKind(%d)", uint8(k))
	}
}

// BoundingVolume is either void or an axis-aligned box. It is a value
// type; every operation returns a new volume.
//
// For a box, min <= max holds componentwise and the derived center,
// half-size and corner cache always describe the same box: they are
// only ever rebuilt together by setBox.
type BoundingVolume struct {
	kind     BoundsKind
	min, max linear.V3
	center   linear.V3
	half     linear.V3
	corners  [8]linear.V3
}

// VoidBounds returns the void bounding volume.
func VoidBounds() BoundingVolume { return BoundingVolume{} }

// NewBoundingBox returns a box spanning min and max. The corners are
// normalized componentwise, so swapped coordinates still produce a
// valid box.
func NewBoundingBox(min, max linear.V3) BoundingVolume {
	var b BoundingVolume
	b.setBox(min.Min(max), min.Max(max))
	return b
}

// BoundsFromPoints returns the box enclosing the xyz triplets in
// coords. It returns the void volume when coords holds no complete
// triplet.
func BoundsFromPoints(coords []float32) BoundingVolume {
	n := len(coords) / 3
	if n == 0 {
		return VoidBounds()
	}
	lo := linear.V3{coords[0], coords[1], coords[2]}
	hi := lo
	for i := 1; i < n; i++ {
		p := linear.V3{coords[3*i], coords[3*i+1], coords[3*i+2]}
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	var b BoundingVolume
	b.setBox(lo, hi)
	return b
}

// setBox sets every field of a box from its extremes.
func (b *BoundingVolume) setBox(min, max linear.V3) {
	b.kind = BoundsBox
	b.min = min
	b.max = max
	b.center = min.Add(max).Scale(0.5)
	b.half = max.Sub(min).Scale(0.5)
	b.corners = [8]linear.V3{
		{min[0], min[1], min[2]},
		{max[0], min[1], min[2]},
		{min[0], max[1], min[2]},
		{max[0], max[1], min[2]},
		{min[0], min[1], max[2]},
		{max[0], min[1], max[2]},
		{min[0], max[1], max[2]},
		{max[0], max[1], max[2]},
	}
}

// Kind returns the variant of b.
func (b BoundingVolume) Kind() BoundsKind { return b.kind }

// IsVoid reports whether b is the void volume.
func (b BoundingVolume) IsVoid() bool { return b.kind == BoundsVoid }

// Min returns the minimum corner. It is the zero vector for void bounds.
func (b BoundingVolume) Min() linear.V3 { return b.min }

// Max returns the maximum corner. It is the zero vector for void bounds.
func (b BoundingVolume) Max() linear.V3 { return b.max }

// Center returns the center of the box.
func (b BoundingVolume) Center() linear.V3 { return b.center }

// Size returns the full extent of the box along each axis.
func (b BoundingVolume) Size() linear.V3 { return b.half.Scale(2) }

// HalfSize returns half the extent of the box along each axis.
func (b BoundingVolume) HalfSize() linear.V3 { return b.half }

// Corners returns the eight corners of the box.
func (b BoundingVolume) Corners() [8]linear.V3 { return b.corners }

// Equal reports whether a and b describe the same volume.
func (b BoundingVolume) Equal(o BoundingVolume) bool {
	if b.kind != o.kind {
		return false
	}
	return b.kind == BoundsVoid || (b.min == o.min && b.max == o.max)
}

// Union returns the smallest volume enclosing both b and o. Void
// operands are ignored.
func (b BoundingVolume) Union(o BoundingVolume) BoundingVolume {
	switch {
	case b.IsVoid():
		return o
	case o.IsVoid():
		return b
	}
	var u BoundingVolume
	u.setBox(b.min.Min(o.min), b.max.Max(o.max))
	return u
}

// ContainsPoint reports whether p lies inside b. Points on a face are
// inside.
func (b BoundingVolume) ContainsPoint(p linear.V3) bool {
	if b.IsVoid() {
		return false
	}
	for i := range p {
		if p[i] < b.min[i] || p[i] > b.max[i] {
			return false
		}
	}
	return true
}

// IntersectsBox reports whether b overlaps the box spanning min and max.
// Boxes sharing only a face overlap.
func (b BoundingVolume) IntersectsBox(min, max linear.V3) bool {
	if b.IsVoid() {
		return false
	}
	for i := range min {
		if !(b.min[i] <= max[i] && b.max[i] >= min[i]) {
			return false
		}
	}
	return true
}

// IntersectsBounds reports whether b overlaps o. A void operand never
// overlaps anything.
func (b BoundingVolume) IntersectsBounds(o BoundingVolume) bool {
	if o.IsVoid() {
		return false
	}
	return b.IntersectsBox(o.min, o.max)
}

// IntersectsSphere reports whether b overlaps the sphere at center
// with the given radius. A sphere touching a face overlaps.
func (b BoundingVolume) IntersectsSphere(center linear.V3, radius float32) bool {
	if b.IsVoid() {
		return false
	}
	var d float32
	for i := range center {
		switch {
		case center[i] < b.min[i]:
			e := center[i] - b.min[i]
			d += e * e
		case center[i] > b.max[i]:
			e := center[i] - b.max[i]
			d += e * e
		}
	}
	return d <= radius*radius
}

// Transform returns b transformed by the affine matrix m. The center
// is transformed as a point and the half-size by the absolute upper
// 3x3 of m, so the result encloses the transformed box.
func (b BoundingVolume) Transform(m linear.M4) BoundingVolume {
	if b.IsVoid() {
		return b
	}
	c := m.MulPoint(b.center)
	var h linear.V3
	for r := 0; r < 3; r++ {
		for k := 0; k < 3; k++ {
			h[r] += math32.Abs(m[k][r]) * b.half[k]
		}
	}
	var t BoundingVolume
	t.setBox(c.Sub(h), c.Add(h))
	return t
}

func (b BoundingVolume) String() string {
	if b.IsVoid() {
		return "void"
	}
	return fmt.Sprintf("box[%v %v]", b.min, b.max)
}
