// Package linear implements the small amount of 3D vector and matrix math
// the scene graph needs: vectors, column-major 4x4 matrices and planes.
//
// All types are plain arrays so they can be indexed per axis, which keeps
// the slab and separating-axis loops in the bounds code short.
package linear

import "github.com/chewxy/math32"

// V3 is a 3-component vector of float32.
type V3 [3]float32

// V4 is a 4-component vector of float32.
type V4 [4]float32

// Vec3 returns the vector (x, y, z).
func Vec3(x, y, z float32) V3 { return V3{x, y, z} }

// Add returns v + w.
func (v V3) Add(w V3) V3 { return V3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v - w.
func (v V3) Sub(w V3) V3 { return V3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns s ⋅ v.
func (v V3) Scale(s float32) V3 { return V3{v[0] * s, v[1] * s, v[2] * s} }

// Mul returns the componentwise product of v and w.
func (v V3) Mul(w V3) V3 { return V3{v[0] * w[0], v[1] * w[1], v[2] * w[2]} }

// Dot returns v · w.
func (v V3) Dot(w V3) float32 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Cross returns v × w.
func (v V3) Cross(w V3) V3 {
	return V3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Len returns the length of v.
func (v V3) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Norm returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v V3) Norm() V3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Abs returns the componentwise absolute value of v.
func (v V3) Abs() V3 { return V3{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])} }

// Min returns the componentwise minimum of v and w.
func (v V3) Min(w V3) V3 {
	return V3{math32.Min(v[0], w[0]), math32.Min(v[1], w[1]), math32.Min(v[2], w[2])}
}

// Max returns the componentwise maximum of v and w.
func (v V3) Max(w V3) V3 {
	return V3{math32.Max(v[0], w[0]), math32.Max(v[1], w[1]), math32.Max(v[2], w[2])}
}

// ApproxEqual reports whether every component of v and w differs by at
// most tol.
func (v V3) ApproxEqual(w V3, tol float32) bool {
	for i := range v {
		if math32.Abs(v[i]-w[i]) > tol {
			return false
		}
	}
	return true
}

// Vec4 extends v with w.
func (v V3) Vec4(w float32) V4 { return V4{v[0], v[1], v[2], w} }

// Vec3 drops the w component of v.
func (v V4) Vec3() V3 { return V3{v[0], v[1], v[2]} }

// Add returns v + w.
func (v V4) Add(w V4) V4 { return V4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]} }

// Sub returns v - w.
func (v V4) Sub(w V4) V4 { return V4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]} }

// Scale returns s ⋅ v.
func (v V4) Scale(s float32) V4 { return V4{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }

// Dot returns v · w.
func (v V4) Dot(w V4) float32 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3] }
