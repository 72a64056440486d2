package spatial

import (
	"testing"

	"fluids/core"
)

func TestDomainContains(t *testing.T) {
	d := Domain{Min: core.Vec{0, 0}, Max: core.Vec{10, 10}}
	if !d.Contains(core.Vec{5, 5}) {
		t.Fatal("expected interior point to be contained")
	}
	if d.Contains(core.Vec{-1, 5}) {
		t.Fatal("expected point outside min to be excluded")
	}
	if d.Contains(core.Vec{5, 11}) {
		t.Fatal("expected point outside max to be excluded")
	}
}

func TestClampKeepsInteriorPositionUnchanged(t *testing.T) {
	d := Domain{Min: core.Vec{0, 0}, Max: core.Vec{10, 10}}
	pos := core.Vec{5, 5}
	clamped, _, moved := Clamp(pos, core.Vec{4.9, 4.9}, d, 0.01)
	if moved {
		t.Fatalf("Clamp moved an interior position: got %v", clamped)
	}
	if clamped[0] != 5 || clamped[1] != 5 {
		t.Fatalf("Clamp altered an interior position: got %v", clamped)
	}
}

func TestClampCoercesEscapingPosition(t *testing.T) {
	d := Domain{Min: core.Vec{0, 0}, Max: core.Vec{10, 10}}
	oldPos := core.Vec{9.5, 5}
	newPos := core.Vec{10.5, 5}
	dt := 0.1

	clamped, vel, moved := Clamp(newPos, oldPos, d, dt)
	if !moved {
		t.Fatal("Clamp should report movement for an escaping position")
	}
	if clamped[0] != 10 {
		t.Fatalf("Clamp: got x=%v, want 10", clamped[0])
	}
	wantVelX := (10 - 9.5) / dt
	if !approxEq(vel[0], wantVelX, 1e-9) {
		t.Fatalf("Clamp velocity: got %v, want %v", vel[0], wantVelX)
	}
}
