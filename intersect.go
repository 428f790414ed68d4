package arbor

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/phanxgames/arbor/linear"
)

// FrustumResult classifies a volume against a view frustum.
type FrustumResult uint8

const (
	FrustumAllOut  FrustumResult = iota // entirely outside at least one plane
	FrustumAllIn                        // every corner inside every plane
	FrustumPartial                      // anything else, including some volumes that are really outside
)

func (r FrustumResult) String() string {
	switch r {
	case FrustumAllOut:
		return "all-out"
	case FrustumAllIn:
		return "all-in"
	case FrustumPartial:
		return "partial"
	default:
		return fmt.Sprintf("FrustumResult(%d)", uint8(r))
	}
}

// Candidate plane classification of the ray origin per axis.
const (
	slabBelow = iota
	slabAbove
	slabInside
)

// IntersectsRay reports whether the ray from origin along dir hits b.
// A ray starting inside b always hits.
func (b BoundingVolume) IntersectsRay(origin, dir linear.V3) bool {
	_, hit := b.rayHit(origin, dir)
	return hit
}

// IntersectsRayRange is IntersectsRay with the hit restricted to ray
// parameters t <= maxT, measured in units of dir.
func (b BoundingVolume) IntersectsRayRange(origin, dir linear.V3, maxT float32) bool {
	t, hit := b.rayHit(origin, dir)
	return hit && t <= maxT
}

// rayHit implements the candidate-plane slab test. For each axis the
// origin is either inside the slab or below/above it; in the latter case
// the distance to the near plane of the slab is a candidate. The largest
// candidate names the plane the ray enters through, and the hit point on
// it must lie within the other two slabs. Ties keep the lowest axis.
func (b BoundingVolume) rayHit(origin, dir linear.V3) (float32, bool) {
	if b.IsVoid() {
		return 0, false
	}
	var (
		side      [3]int
		candidate linear.V3
		inside    = true
	)
	for i := range origin {
		switch {
		case origin[i] < b.min[i]:
			side[i] = slabBelow
			candidate[i] = b.min[i]
			inside = false
		case origin[i] > b.max[i]:
			side[i] = slabAbove
			candidate[i] = b.max[i]
			inside = false
		default:
			side[i] = slabInside
		}
	}
	if inside {
		return 0, true
	}

	var dist linear.V3
	for i := range dist {
		if side[i] != slabInside && dir[i] != 0 {
			dist[i] = (candidate[i] - origin[i]) / dir[i]
		} else {
			dist[i] = -1
		}
	}

	plane := 0
	for i := 1; i < 3; i++ {
		if dist[plane] < dist[i] {
			plane = i
		}
	}
	t := dist[plane]
	if t < 0 {
		return 0, false
	}
	for i := range origin {
		if i == plane {
			continue
		}
		c := origin[i] + t*dir[i]
		if c < b.min[i] || c > b.max[i] {
			return 0, false
		}
	}
	return t, true
}

// IntersectsSegment reports whether the segment from start to end
// overlaps b. It is a separating-axis test in box-local space over the
// three box axes and the three cross products of the box axes with the
// segment direction.
func (b BoundingVolume) IntersectsSegment(start, end linear.V3) bool {
	if b.IsVoid() {
		return false
	}
	e := b.half
	// Segment half-vector and midpoint relative to the box center.
	d := end.Sub(start).Scale(0.5)
	m := start.Add(d).Sub(b.center)
	ad := d.Abs()

	for i := range m {
		if math32.Abs(m[i]) > e[i]+ad[i] {
			return false
		}
	}
	if math32.Abs(m[1]*d[2]-m[2]*d[1]) > e[1]*ad[2]+e[2]*ad[1] {
		return false
	}
	if math32.Abs(m[2]*d[0]-m[0]*d[2]) > e[0]*ad[2]+e[2]*ad[0] {
		return false
	}
	if math32.Abs(m[0]*d[1]-m[1]*d[0]) > e[0]*ad[1]+e[1]*ad[0] {
		return false
	}
	return true
}

// IntersectsTriangle reports whether the triangle v0 v1 v2 overlaps b.
// The test checks thirteen candidate separating axes: the nine cross
// products of box axes and triangle edges, the three box face normals
// and the triangle normal. It stops at the first separating axis.
func (b BoundingVolume) IntersectsTriangle(v0, v1, v2 linear.V3) bool {
	if b.IsVoid() {
		return false
	}
	h := b.half
	p0 := v0.Sub(b.center)
	p1 := v1.Sub(b.center)
	p2 := v2.Sub(b.center)

	edges := [3]linear.V3{p1.Sub(p0), p2.Sub(p1), p0.Sub(p2)}
	for _, e := range edges {
		for axis := 0; axis < 3; axis++ {
			// a = unit(axis) × e
			var a linear.V3
			switch axis {
			case 0:
				a = linear.V3{0, -e[2], e[1]}
			case 1:
				a = linear.V3{e[2], 0, -e[0]}
			case 2:
				a = linear.V3{-e[1], e[0], 0}
			}
			if separated(a, h, p0, p1, p2) {
				return false
			}
		}
	}

	for i := 0; i < 3; i++ {
		lo := math32.Min(p0[i], math32.Min(p1[i], p2[i]))
		hi := math32.Max(p0[i], math32.Max(p1[i], p2[i]))
		if lo > h[i] || hi < -h[i] {
			return false
		}
	}

	n := edges[0].Cross(edges[1])
	return planeOverlapsBox(n, p0, h)
}

// separated reports whether axis a separates the triangle p0 p1 p2 from
// the origin-centered box with half-size h.
func separated(a, h, p0, p1, p2 linear.V3) bool {
	d0, d1, d2 := a.Dot(p0), a.Dot(p1), a.Dot(p2)
	lo := math32.Min(d0, math32.Min(d1, d2))
	hi := math32.Max(d0, math32.Max(d1, d2))
	r := h[0]*math32.Abs(a[0]) + h[1]*math32.Abs(a[1]) + h[2]*math32.Abs(a[2])
	return lo > r || hi < -r
}

// planeOverlapsBox reports whether the plane with normal n through p
// crosses the origin-centered box with half-size h.
func planeOverlapsBox(n, p, h linear.V3) bool {
	var vmin, vmax linear.V3
	for i := range n {
		if n[i] > 0 {
			vmin[i] = -h[i] - p[i]
			vmax[i] = h[i] - p[i]
		} else {
			vmin[i] = h[i] - p[i]
			vmax[i] = -h[i] - p[i]
		}
	}
	if n.Dot(vmin) > 0 {
		return false
	}
	return n.Dot(vmax) >= 0
}

// ClassifyFrustum classifies b, placed in the world by world, against
// six frustum planes whose positive side is inside.
//
// Each plane counts the transformed corners on its positive side. A plane
// with no positive corner puts the whole volume out. When every plane
// sees all eight corners the volume is all in; otherwise it is partial.
// Volumes near a frustum edge can be reported partial while being fully
// outside; consumers treat partial as potentially visible.
func (b BoundingVolume) ClassifyFrustum(planes [6]linear.Plane, world linear.M4) FrustumResult {
	if b.IsVoid() {
		return FrustumAllOut
	}
	var corners [8]linear.V3
	for i, c := range b.corners {
		corners[i] = world.MulPoint(c)
	}
	allIn := true
	for _, p := range planes {
		in := 0
		for _, c := range corners {
			if p.Distance(c) >= 0 {
				in++
			}
		}
		if in == 0 {
			return FrustumAllOut
		}
		if in != len(corners) {
			allIn = false
		}
	}
	if allIn {
		return FrustumAllIn
	}
	return FrustumPartial
}

// PlanesFromSlice reads six planes from a flat buffer of 24 values
// ordered a, b, c, d per plane.
func PlanesFromSlice(buf []float32) ([6]linear.Plane, error) {
	var planes [6]linear.Plane
	if len(buf) < 24 {
		return planes, fmt.Errorf("%w: frustum buffer holds %d values, need 24", ErrIllegalArgument, len(buf))
	}
	for i := range planes {
		copy(planes[i][:], buf[4*i:4*i+4])
	}
	return planes, nil
}
