// Package telemetry aggregates per-step solver statistics and reports
// divergence and non-convergence events through structured logging.
package telemetry

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// StepStats summarizes one simulation step for monitoring: density and
// pressure distribution across fluid particles, pressure-solve iteration
// count, and whether any particle diverged outside the domain.
type StepStats struct {
	Step            int     `csv:"step"`
	PressureMean    float64 `csv:"pressure_mean"`
	PressureStdDev  float64 `csv:"pressure_stddev"`
	DensityMean     float64 `csv:"density_mean"`
	DensityStdDev   float64 `csv:"density_stddev"`
	PressureIters   int     `csv:"pressure_iterations"`
	AvgDensityError float64 `csv:"avg_density_error"`
	Diverged        bool    `csv:"diverged"`
}

// Collector accumulates StepStats and logs warnings/divergence events
// through logrus, matching the structured-logging idiom used elsewhere in
// the retrieved corpus's web/cmd entry points.
type Collector struct {
	Log     *logrus.Logger
	History []StepStats
}

// NewCollector returns a Collector with a text-formatted logrus logger.
func NewCollector() *Collector {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Collector{Log: log}
}

// Record computes mean/stddev over the given per-particle density and
// pressure snapshots and appends the resulting StepStats to History.
func (c *Collector) Record(step int, densities, pressures []float64, pressureIters int, avgDensityError float64, diverged bool) StepStats {
	densityMean, densityStd := stat.MeanStdDev(densities, nil)
	pressureMean, pressureStd := stat.MeanStdDev(pressures, nil)

	s := StepStats{
		Step:            step,
		PressureMean:    pressureMean,
		PressureStdDev:  pressureStd,
		DensityMean:     densityMean,
		DensityStdDev:   densityStd,
		PressureIters:   pressureIters,
		AvgDensityError: avgDensityError,
		Diverged:        diverged,
	}
	c.History = append(c.History, s)

	if diverged {
		c.Log.WithField("step", step).Warn("fluid particle diverged outside the domain")
	}
	return s
}

// Warn logs a solver warning (e.g. pressure-loop iteration cap reached)
// tagged with the step it occurred on.
func (c *Collector) Warn(step int, message string) {
	c.Log.WithField("step", step).Warn(message)
}
