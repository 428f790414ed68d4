package linear

import "github.com/chewxy/math32"

// M4 is a column-major 4x4 matrix of float32.
// m[c][r] addresses column c, row r; m[3] holds the translation.
type M4 [4]V4

// I returns the identity matrix.
func I() M4 { return M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul returns m ⋅ n.
func (m M4) Mul(n M4) (r M4) {
	for c := range r {
		for row := range r {
			for k := range r {
				r[c][row] += m[k][row] * n[c][k]
			}
		}
	}
	return
}

// MulV returns m ⋅ v.
func (m M4) MulV(v V4) (r V4) {
	for row := range r {
		r[row] = m[0][row]*v[0] + m[1][row]*v[1] + m[2][row]*v[2] + m[3][row]*v[3]
	}
	return
}

// MulPoint transforms the point p by m, treating w as 1 and
// discarding the resulting w.
func (m M4) MulPoint(p V3) V3 {
	return V3{
		m[0][0]*p[0] + m[1][0]*p[1] + m[2][0]*p[2] + m[3][0],
		m[0][1]*p[0] + m[1][1]*p[1] + m[2][1]*p[2] + m[3][1],
		m[0][2]*p[0] + m[1][2]*p[1] + m[2][2]*p[2] + m[3][2],
	}
}

// MulDir transforms the direction d by the upper 3x3 of m.
func (m M4) MulDir(d V3) V3 {
	return V3{
		m[0][0]*d[0] + m[1][0]*d[1] + m[2][0]*d[2],
		m[0][1]*d[0] + m[1][1]*d[1] + m[2][1]*d[2],
		m[0][2]*d[0] + m[1][2]*d[1] + m[2][2]*d[2],
	}
}

// Row returns row r of m.
func (m M4) Row(r int) V4 { return V4{m[0][r], m[1][r], m[2][r], m[3][r]} }

// Transpose returns the transpose of m.
func (m M4) Transpose() (t M4) {
	for c := range m {
		for r := range m {
			t[r][c] = m[c][r]
		}
	}
	return
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) M4 {
	m := I()
	m[3] = V4{x, y, z, 1}
	return m
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) M4 { return M4{{x}, {0, y}, {0, 0, z}, {0, 0, 0, 1}} }

// RotateAxis returns a rotation of angle radians about axis.
// axis need not be normalized.
func RotateAxis(angle float32, axis V3) M4 {
	a := axis.Norm()
	s, c := math32.Sin(angle), math32.Cos(angle)
	t := 1 - c
	x, y, z := a[0], a[1], a[2]
	return M4{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

// Perspective returns a right-handed perspective projection with a
// vertical field of view of fovy radians, mapping depth to [-1, 1].
func Perspective(fovy, aspect, near, far float32) M4 {
	f := 1 / math32.Tan(fovy/2)
	nf := 1 / (near - far)
	return M4{
		{f / aspect},
		{0, f},
		{0, 0, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	}
}

// LookAt returns a right-handed view matrix placing the eye at eye and
// looking towards center.
func LookAt(eye, center, up V3) M4 {
	f := center.Sub(eye).Norm()
	s := f.Cross(up).Norm()
	u := s.Cross(f)
	return M4{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

// Invert returns the inverse of m.
// ok is false when m is singular, in which case inv is the zero matrix.
func (m M4) Invert() (inv M4, ok bool) {
	// Cofactor expansion over 2x2 sub-determinants.
	a00, a01, a02, a03 := m[0][0], m[0][1], m[0][2], m[0][3]
	a10, a11, a12, a13 := m[1][0], m[1][1], m[1][2], m[1][3]
	a20, a21, a22, a23 := m[2][0], m[2][1], m[2][2], m[2][3]
	a30, a31, a32, a33 := m[3][0], m[3][1], m[3][2], m[3][3]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return M4{}, false
	}
	d := 1 / det

	inv[0][0] = (a11*b11 - a12*b10 + a13*b09) * d
	inv[0][1] = (a02*b10 - a01*b11 - a03*b09) * d
	inv[0][2] = (a31*b05 - a32*b04 + a33*b03) * d
	inv[0][3] = (a22*b04 - a21*b05 - a23*b03) * d
	inv[1][0] = (a12*b08 - a10*b11 - a13*b07) * d
	inv[1][1] = (a00*b11 - a02*b08 + a03*b07) * d
	inv[1][2] = (a32*b02 - a30*b05 - a33*b01) * d
	inv[1][3] = (a20*b05 - a22*b02 + a23*b01) * d
	inv[2][0] = (a10*b10 - a11*b08 + a13*b06) * d
	inv[2][1] = (a01*b08 - a00*b10 - a03*b06) * d
	inv[2][2] = (a30*b04 - a31*b02 + a33*b00) * d
	inv[2][3] = (a21*b02 - a20*b04 - a23*b00) * d
	inv[3][0] = (a11*b07 - a10*b09 - a12*b06) * d
	inv[3][1] = (a00*b09 - a01*b07 + a02*b06) * d
	inv[3][2] = (a31*b01 - a30*b03 - a32*b00) * d
	inv[3][3] = (a20*b03 - a21*b01 + a22*b00) * d
	return inv, true
}
