package arbor

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/phanxgames/arbor/linear"
)

func unitBox() BoundingVolume {
	return NewBoundingBox(linear.V3{-1, -1, -1}, linear.V3{1, 1, 1})
}

func assertV3(t *testing.T, name string, got, want linear.V3) {
	t.Helper()
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Construction ---

func TestVoidBounds(t *testing.T) {
	b := VoidBounds()
	if !b.IsVoid() {
		t.Error("VoidBounds should be void")
	}
	if b.Kind() != BoundsVoid {
		t.Errorf("Kind = %v, want %v", b.Kind(), BoundsVoid)
	}
	if b.String() != "void" {
		t.Errorf("String = %q, want %q", b.String(), "void")
	}
}

func TestNewBoundingBoxNormalizes(t *testing.T) {
	b := NewBoundingBox(linear.V3{1, -2, 3}, linear.V3{-1, 2, -3})
	assertV3(t, "Min", b.Min(), linear.V3{-1, -2, -3})
	assertV3(t, "Max", b.Max(), linear.V3{1, 2, 3})
	assertV3(t, "Center", b.Center(), linear.V3{0, 0, 0})
	assertV3(t, "Size", b.Size(), linear.V3{2, 4, 6})
	assertV3(t, "HalfSize", b.HalfSize(), linear.V3{1, 2, 3})
}

func TestBoundingBoxCorners(t *testing.T) {
	b := NewBoundingBox(linear.V3{0, 0, 0}, linear.V3{1, 2, 3})
	corners := b.Corners()
	seen := make(map[linear.V3]bool)
	for _, c := range corners {
		if !b.ContainsPoint(c) {
			t.Errorf("corner %v not contained", c)
		}
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("distinct corners = %d, want 8", len(seen))
	}
	if !seen[b.Min()] || !seen[b.Max()] {
		t.Error("corners should include min and max")
	}
}

func TestBoundsFromPoints(t *testing.T) {
	b := BoundsFromPoints([]float32{1, 2, 3, -1, 5, 0, 0, 0, 4})
	assertV3(t, "Min", b.Min(), linear.V3{-1, 0, 0})
	assertV3(t, "Max", b.Max(), linear.V3{1, 5, 4})

	if !BoundsFromPoints(nil).IsVoid() {
		t.Error("no points should give void bounds")
	}
	if !BoundsFromPoints([]float32{1, 2}).IsVoid() {
		t.Error("an incomplete triplet should give void bounds")
	}
}

func TestBoundsFromSinglePoint(t *testing.T) {
	b := BoundsFromPoints([]float32{2, 3, 4})
	if b.IsVoid() {
		t.Fatal("single point should give a degenerate box")
	}
	assertV3(t, "Size", b.Size(), linear.V3{})
	if !b.ContainsPoint(linear.V3{2, 3, 4}) {
		t.Error("degenerate box should contain its point")
	}
}

// --- Equality and union ---

func TestBoundsEqual(t *testing.T) {
	if !VoidBounds().Equal(VoidBounds()) {
		t.Error("void should equal void")
	}
	if unitBox().Equal(VoidBounds()) {
		t.Error("box should not equal void")
	}
	if !unitBox().Equal(unitBox()) {
		t.Error("box should equal itself")
	}
	other := NewBoundingBox(linear.V3{-1, -1, -1}, linear.V3{1, 1, 2})
	if unitBox().Equal(other) {
		t.Error("different boxes should not be equal")
	}
}

func TestBoundsUnion(t *testing.T) {
	a := NewBoundingBox(linear.V3{0, 0, 0}, linear.V3{1, 1, 1})
	b := NewBoundingBox(linear.V3{-2, 0.5, 0}, linear.V3{0, 3, 0.5})
	u := a.Union(b)
	assertV3(t, "Min", u.Min(), linear.V3{-2, 0, 0})
	assertV3(t, "Max", u.Max(), linear.V3{1, 3, 1})
	assertV3(t, "Center", u.Center(), linear.V3{-0.5, 1.5, 0.5})

	if !a.Union(VoidBounds()).Equal(a) {
		t.Error("union with void should be identity")
	}
	if !VoidBounds().Union(a).Equal(a) {
		t.Error("void union box should be the box")
	}
	if !VoidBounds().Union(VoidBounds()).IsVoid() {
		t.Error("void union void should be void")
	}
}

// --- Point and box tests ---

func TestContainsCenter(t *testing.T) {
	boxes := []BoundingVolume{
		unitBox(),
		NewBoundingBox(linear.V3{3, 4, 5}, linear.V3{10, 4.5, 6}),
		NewBoundingBox(linear.V3{-100, -0.001, 7}, linear.V3{-99, 0.001, 7}),
	}
	for _, b := range boxes {
		if !b.ContainsPoint(b.Center()) {
			t.Errorf("%v does not contain its center %v", b, b.Center())
		}
	}
}

func TestContainsPoint(t *testing.T) {
	b := unitBox()
	tests := []struct {
		p    linear.V3
		want bool
	}{
		{linear.V3{0, 0, 0}, true},
		{linear.V3{1, 0, 0}, true},
		{linear.V3{1, 1, 1}, true},
		{linear.V3{1.01, 0, 0}, false},
		{linear.V3{0, -2, 0}, false},
	}
	for _, tt := range tests {
		if got := b.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if VoidBounds().ContainsPoint(linear.V3{}) {
		t.Error("void should contain nothing")
	}
}

func TestIntersectsBox(t *testing.T) {
	b := unitBox()
	tests := []struct {
		name     string
		min, max linear.V3
		want     bool
	}{
		{"overlap", linear.V3{0, 0, 0}, linear.V3{2, 2, 2}, true},
		{"touching face", linear.V3{1, -1, -1}, linear.V3{2, 1, 1}, true},
		{"enclosing", linear.V3{-5, -5, -5}, linear.V3{5, 5, 5}, true},
		{"apart on x", linear.V3{1.5, 0, 0}, linear.V3{2, 1, 1}, false},
		{"apart on z", linear.V3{0, 0, -3}, linear.V3{1, 1, -2}, false},
	}
	for _, tt := range tests {
		if got := b.IntersectsBox(tt.min, tt.max); got != tt.want {
			t.Errorf("%s: IntersectsBox = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIntersectsBoundsVoid(t *testing.T) {
	if unitBox().IntersectsBounds(VoidBounds()) {
		t.Error("box should not intersect void")
	}
	if VoidBounds().IntersectsBounds(unitBox()) {
		t.Error("void should not intersect box")
	}
	if !unitBox().IntersectsBounds(unitBox()) {
		t.Error("box should intersect itself")
	}
}

// --- Sphere ---

func TestIntersectsSphere(t *testing.T) {
	b := unitBox()
	tests := []struct {
		name   string
		center linear.V3
		radius float32
		want   bool
	}{
		{"far small", linear.V3{3, 0, 0}, 1, false},
		{"far large", linear.V3{3, 0, 0}, 3, true},
		{"touching", linear.V3{2, 0, 0}, 1, true},
		{"inside", linear.V3{0.5, 0, 0}, 0.1, true},
		{"corner miss", linear.V3{2, 2, 2}, 1.7, false},
		{"corner hit", linear.V3{2, 2, 2}, 1.8, true},
	}
	for _, tt := range tests {
		if got := b.IntersectsSphere(tt.center, tt.radius); got != tt.want {
			t.Errorf("%s: IntersectsSphere(%v, %v) = %v, want %v",
				tt.name, tt.center, tt.radius, got, tt.want)
		}
	}
	if VoidBounds().IntersectsSphere(linear.V3{}, 100) {
		t.Error("void should not intersect a sphere")
	}
}

// --- Transform ---

func TestTransformIdentity(t *testing.T) {
	b := NewBoundingBox(linear.V3{-1, 2, -3}, linear.V3{4, 5, 6})
	tb := b.Transform(linear.I())
	assertV3(t, "Min", tb.Min(), b.Min())
	assertV3(t, "Max", tb.Max(), b.Max())
	assertV3(t, "Center", tb.Center(), b.Center())
	assertV3(t, "Size", tb.Size(), b.Size())
}

func TestTransformTranslate(t *testing.T) {
	tb := unitBox().Transform(linear.Translate(1, 2, 3))
	assertV3(t, "Min", tb.Min(), linear.V3{0, 1, 2})
	assertV3(t, "Max", tb.Max(), linear.V3{2, 3, 4})
}

func TestTransformScale(t *testing.T) {
	tb := unitBox().Transform(linear.Scale(2, -3, 0.5))
	assertV3(t, "Min", tb.Min(), linear.V3{-2, -3, -0.5})
	assertV3(t, "Max", tb.Max(), linear.V3{2, 3, 0.5})
}

func TestTransformRotate(t *testing.T) {
	b := NewBoundingBox(linear.V3{0, 0, 0}, linear.V3{2, 1, 1})
	tb := b.Transform(linear.RotateAxis(math32.Pi/2, linear.V3{0, 0, 1}))
	assertV3(t, "Min", tb.Min(), linear.V3{-1, 0, 0})
	assertV3(t, "Max", tb.Max(), linear.V3{0, 2, 1})
}

func TestTransformRotateEnclosesCorners(t *testing.T) {
	b := NewBoundingBox(linear.V3{1, 2, 3}, linear.V3{4, 6, 5})
	m := linear.Translate(3, -1, 2).Mul(linear.RotateAxis(0.7, linear.V3{1, 1, 0}.Norm()))
	tb := b.Transform(m)
	grown := NewBoundingBox(tb.Min().Sub(linear.V3{1e-4, 1e-4, 1e-4}), tb.Max().Add(linear.V3{1e-4, 1e-4, 1e-4}))
	for _, c := range b.Corners() {
		p := m.MulPoint(c)
		if !grown.ContainsPoint(p) {
			t.Errorf("transformed corner %v outside %v", p, tb)
		}
	}
}

func TestTransformVoid(t *testing.T) {
	if !VoidBounds().Transform(linear.Translate(1, 1, 1)).IsVoid() {
		t.Error("transformed void should stay void")
	}
}
