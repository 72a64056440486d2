package spatial

import (
	"math"
	"testing"

	"fluids/core"
)

func TestCubicSplineZeroBeyondSupportRadius(t *testing.T) {
	k := NewCubicSpline(0.5, 2)
	r := core.Vec{k.SupportRadius() + 0.01, 0}
	if w := k.W(r); w != 0 {
		t.Fatalf("W beyond support radius: got %v, want 0", w)
	}
}

func TestCubicSplinePeakAtOrigin(t *testing.T) {
	k := NewCubicSpline(0.5, 2)
	origin := k.W(core.Vec{0, 0})
	near := k.W(core.Vec{0.1, 0})
	if origin <= near {
		t.Fatalf("W should be maximal at r=0: W(0)=%v, W(0.1)=%v", origin, near)
	}
}

func TestCubicSplineGradWZeroAtOrigin(t *testing.T) {
	k := NewCubicSpline(0.5, 2)
	g := k.GradW(core.Vec{0, 0})
	if g[0] != 0 || g[1] != 0 {
		t.Fatalf("GradW at origin: got %v, want zero vector", g)
	}
}

func TestCubicSplineGradWAntisymmetric(t *testing.T) {
	k := NewCubicSpline(0.5, 2)
	r := core.Vec{0.2, 0.1}
	g1 := k.GradW(r)
	g2 := k.GradW(r.Scale(-1))
	for i := range g1 {
		if !approxEq(g1[i], -g2[i], 1e-12) {
			t.Fatalf("GradW(-r) should be -GradW(r): got %v and %v", g1, g2)
		}
	}
}

func TestCubicSplineIntegratesApproximatelyToOne(t *testing.T) {
	h := 0.5
	k := NewCubicSpline(h, 2)
	support := k.SupportRadius()

	const steps = 400
	cell := (2 * support) / steps
	total := 0.0
	for ix := 0; ix < steps; ix++ {
		for iy := 0; iy < steps; iy++ {
			x := -support + (float64(ix)+0.5)*cell
			y := -support + (float64(iy)+0.5)*cell
			total += k.W(core.Vec{x, y}) * cell * cell
		}
	}
	if !approxEq(total, 1, 0.02) {
		t.Fatalf("partition of unity: integral = %v, want ~1", total)
	}
}

func TestNewCubicSplinePanicsOnBadDim(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unsupported dimension")
		}
	}()
	NewCubicSpline(0.5, 4)
}

func approxEq(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
