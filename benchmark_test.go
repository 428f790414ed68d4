package arbor

import (
	"testing"

	"github.com/phanxgames/arbor/linear"
)

// setupBenchGraph creates a graph with n shapes spread over groups of
// 100 under one root.
func setupBenchGraph(n int) (*Graph, NodeID, []NodeID) {
	g := NewGraph()
	root := g.NewGroup("root")
	shapes := make([]NodeID, 0, n)
	var grp NodeID
	for i := 0; i < n; i++ {
		if i%100 == 0 {
			grp = g.NewTransformGroup("grp")
			g.SetTransform(grp, linear.Translate(float32(i/100)*10, 0, 0))
			g.AddChild(root, grp)
		}
		s := g.NewShape("s")
		x := float32(i % 100)
		g.SetVertices(s, []float32{x, 0, 0, x + 1, 1, 1}, 2)
		g.AddChild(grp, s)
		shapes = append(shapes, s)
	}
	return g, root, shapes
}

// --- Propagation Benchmarks ---

func BenchmarkSetVertices_10000Shapes(b *testing.B) {
	g, _, shapes := setupBenchGraph(10000)
	coords := []float32{0, 0, 0, 1, 1, 1}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := shapes[i%len(shapes)]
		coords[4] = float32(i%7) + 1
		g.SetVertices(s, coords, 2)
	}
}

func BenchmarkMarkDirtyResolve_10000Shapes(b *testing.B) {
	g, _, shapes := setupBenchGraph(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := 0; j < len(shapes); j += 97 {
			g.MarkBoundsDirty(shapes[j])
		}
		g.ResolveBounds()
	}
}

func BenchmarkAddChildCycleCheck_Deep(b *testing.B) {
	g := NewGraph()
	parent := g.NewGroup("root")
	for i := 0; i < 200; i++ {
		child := g.NewGroup("n")
		g.AddChild(parent, child)
		parent = child
	}
	leaf := g.NewShape("leaf")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g.AddChild(parent, leaf)
		g.RemoveChild(parent, leaf)
	}
}

// --- Intersection Benchmarks ---

func BenchmarkIntersectsRay(b *testing.B) {
	bv := unitBox()
	origin, dir := linear.V3{-5, 0.3, 0.2}, linear.V3{1, 0.01, -0.02}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bv.IntersectsRay(origin, dir)
	}
}

func BenchmarkIntersectsTriangle(b *testing.B) {
	bv := unitBox()
	v0, v1, v2 := linear.V3{2.5, 0, 0}, linear.V3{0, 2.5, 0}, linear.V3{0, 0, 2.5}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bv.IntersectsTriangle(v0, v1, v2)
	}
}

func BenchmarkClassifyFrustum(b *testing.B) {
	cam := NewCamera(16.0 / 9.0)
	planes := cam.Frustum()
	bv := unitBox()
	world := linear.Translate(3, 1, -20)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bv.ClassifyFrustum(planes, world)
	}
}
