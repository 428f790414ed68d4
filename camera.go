package arbor

import (
	"github.com/chewxy/math32"

	"github.com/phanxgames/arbor/linear"
)

// Camera is a perspective view into the scene. It produces the frustum
// planes culling consumers classify bounds against.
type Camera struct {
	// Eye is the camera position; Center is the point it looks at.
	Eye, Center linear.V3
	// Up is the approximate up direction.
	Up linear.V3
	// FovY is the vertical field of view in radians.
	FovY float32
	// Aspect is the viewport width divided by its height.
	Aspect float32
	// Near and Far are the clip distances.
	Near, Far float32

	viewProj linear.M4
	planes   [6]linear.Plane
	dirty    bool
}

// NewCamera creates a camera at the origin looking down -Z with a 60°
// field of view.
func NewCamera(aspect float32) *Camera {
	return &Camera{
		Center: linear.V3{0, 0, -1},
		Up:     linear.V3{0, 1, 0},
		FovY:   math32.Pi / 3,
		Aspect: aspect,
		Near:   0.1,
		Far:    1000,
		dirty:  true,
	}
}

// LookAt places the camera at eye looking towards center.
func (c *Camera) LookAt(eye, center, up linear.V3) {
	c.Eye, c.Center, c.Up = eye, center, up
	c.dirty = true
}

// SetPerspective sets the projection parameters.
func (c *Camera) SetPerspective(fovy, aspect, near, far float32) {
	c.FovY, c.Aspect, c.Near, c.Far = fovy, aspect, near, far
	c.dirty = true
}

// MarkDirty forces a recomputation of the cached matrices. Useful after
// setting fields directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

func (c *Camera) compute() {
	if !c.dirty {
		return
	}
	c.dirty = false
	proj := linear.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
	c.viewProj = proj.Mul(linear.LookAt(c.Eye, c.Center, c.Up))
	c.planes = linear.FrustumPlanes(c.viewProj)
}

// ViewProjection returns projection ⋅ view.
func (c *Camera) ViewProjection() linear.M4 {
	c.compute()
	return c.viewProj
}

// Frustum returns the six inward-facing clip planes in world space.
func (c *Camera) Frustum() [6]linear.Plane {
	c.compute()
	return c.planes
}

// Classify tests the bounds of node id, placed in the world by world,
// against the camera frustum.
func (c *Camera) Classify(g *Graph, id NodeID, world linear.M4) FrustumResult {
	return g.Bounds(id).ClassifyFrustum(c.Frustum(), world)
}
