package telemetry

import (
	"math"
	"testing"
)

func TestRecordComputesMeanAndStdDev(t *testing.T) {
	c := NewCollector()
	densities := []float64{990, 1000, 1010}
	pressures := []float64{0, 10, 20}

	stats := c.Record(1, densities, pressures, 5, 2.5, false)

	if !approxEqual(stats.DensityMean, 1000, 1e-9) {
		t.Fatalf("DensityMean: got %v, want 1000", stats.DensityMean)
	}
	if stats.DensityStdDev <= 0 {
		t.Fatalf("DensityStdDev: got %v, want > 0", stats.DensityStdDev)
	}
	if !approxEqual(stats.PressureMean, 10, 1e-9) {
		t.Fatalf("PressureMean: got %v, want 10", stats.PressureMean)
	}
	if stats.PressureIters != 5 {
		t.Fatalf("PressureIters: got %d, want 5", stats.PressureIters)
	}
	if len(c.History) != 1 {
		t.Fatalf("History length: got %d, want 1", len(c.History))
	}
}

func TestRecordAppendsEveryCallToHistory(t *testing.T) {
	c := NewCollector()
	for step := 0; step < 3; step++ {
		c.Record(step, []float64{1000}, []float64{0}, 0, 0, false)
	}
	if len(c.History) != 3 {
		t.Fatalf("History length: got %d, want 3", len(c.History))
	}
}

func TestRecordMarksDivergedStep(t *testing.T) {
	c := NewCollector()
	stats := c.Record(0, []float64{1000}, []float64{0}, 0, 0, true)
	if !stats.Diverged {
		t.Fatal("expected Diverged to be true")
	}
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
