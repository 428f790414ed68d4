package linear

// Plane is a plane in the form a·x + b·y + c·z + d = 0.
// Points with a positive distance lie on the plane's positive side.
type Plane V4

// NewPlane returns the plane through p with normal n.
func NewPlane(n, p V3) Plane {
	return Plane{n[0], n[1], n[2], -n.Dot(p)}
}

// Normal returns the plane normal (a, b, c).
func (p Plane) Normal() V3 { return V3{p[0], p[1], p[2]} }

// Distance returns the signed distance of q from p, scaled by the
// length of the normal.
func (p Plane) Distance(q V3) float32 {
	return p[0]*q[0] + p[1]*q[1] + p[2]*q[2] + p[3]
}

// Normalize returns p with a unit-length normal.
// A degenerate plane is returned unchanged.
func (p Plane) Normalize() Plane {
	l := p.Normal().Len()
	if l == 0 {
		return p
	}
	return Plane(V4(p).Scale(1 / l))
}

// FrustumPlanes extracts the six clip planes of the view-projection
// matrix m, ordered left, right, bottom, top, near, far. Each plane
// is normalized and faces inwards.
func FrustumPlanes(m M4) [6]Plane {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	return [6]Plane{
		Plane(r3.Add(r0)).Normalize(),
		Plane(r3.Sub(r0)).Normalize(),
		Plane(r3.Add(r1)).Normalize(),
		Plane(r3.Sub(r1)).Normalize(),
		Plane(r3.Add(r2)).Normalize(),
		Plane(r3.Sub(r2)).Normalize(),
	}
}
