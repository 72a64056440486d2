package simulation

import (
	"strings"
	"testing"
)

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Reason: "h must be > 0"}
	if err.Error() == "" {
		t.Fatal("ConfigError.Error() returned empty string")
	}
}

func TestDegenerateBoundaryErrorIncludesIndex(t *testing.T) {
	err := &DegenerateBoundaryError{Index: 7}
	msg := err.Error()
	if !strings.Contains(msg, "index 7") {
		t.Fatalf("DegenerateBoundaryError.Error() does not name index 7: %q", msg)
	}
}

func TestDivergenceHandlerReceivesReport(t *testing.T) {
	var got DivergenceReport
	var handler DivergenceHandler = func(r DivergenceReport) {
		got = r
	}
	handler(DivergenceReport{Index: 3, Density: 1000})
	if got.Index != 3 || got.Density != 1000 {
		t.Fatalf("handler did not receive the report: got %+v", got)
	}
}
