package core

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestVecArithmetic(t *testing.T) {
	a := Vec{1, 2, 3}
	b := Vec{4, 5, 6}

	if got := a.Add(b); !(got[0] == 5 && got[1] == 7 && got[2] == 9) {
		t.Fatalf("Add: got %v", got)
	}
	if got := b.Sub(a); !(got[0] == 3 && got[1] == 3 && got[2] == 3) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := a.Scale(2); !(got[0] == 2 && got[1] == 4 && got[2] == 6) {
		t.Fatalf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Fatalf("Dot: got %v, want 32", got)
	}
}

func TestVecLength(t *testing.T) {
	v := Vec{3, 4}
	if !approxEqual(v.Length(), 5, 1e-12) {
		t.Fatalf("Length: got %v, want 5", v.Length())
	}
	if v.LengthSquare() != 25 {
		t.Fatalf("LengthSquare: got %v, want 25", v.LengthSquare())
	}
}

func TestVecAddScaledInPlace(t *testing.T) {
	v := Vec{1, 1}
	other := Vec{2, 4}
	v.AddScaled(other, 0.5)
	if !(v[0] == 2 && v[1] == 3) {
		t.Fatalf("AddScaled: got %v", v)
	}
}

func TestVecCloneIsIndependent(t *testing.T) {
	v := Vec{1, 2}
	c := v.Clone()
	c[0] = 99
	if v[0] != 1 {
		t.Fatalf("Clone aliased original: got %v", v)
	}
}

func TestVecZero(t *testing.T) {
	v := Vec{1, 2, 3}
	v.Zero()
	for i, x := range v {
		if x != 0 {
			t.Fatalf("Zero: component %d = %v, want 0", i, x)
		}
	}
}

func TestNewVecDimension(t *testing.T) {
	v := NewVec(3)
	if len(v) != 3 {
		t.Fatalf("NewVec(3): got length %d", len(v))
	}
	for i, x := range v {
		if x != 0 {
			t.Fatalf("NewVec: component %d = %v, want 0", i, x)
		}
	}
}
