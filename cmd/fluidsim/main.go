package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	_ "net/http/pprof" // import for pprof side effects
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"fluids/config"
	"fluids/core"
	"fluids/input"
	"fluids/parallel"
	"fluids/scene"
	"fluids/simulation"
	"fluids/spatial"
	"fluids/telemetry"
	"fluids/viz"
)

func buildSolver(cfg *config.Config) (simulation.Solver, spatial.Domain, *spatial.Grid, error) {
	sc := cfg.Scene
	buildParams := scene.BuildParams{
		Dim:        cfg.Dim,
		CellSize:   cfg.H,
		Resolution: sc.Resolution,
		FluidBlock: scene.Box{Min: sc.FluidMin, Max: sc.FluidMax},
	}
	fluid, boundary := scene.Build(buildParams)

	res := make([]int, cfg.Dim)
	for d := 0; d < cfg.Dim; d++ {
		res[d] = sc.Resolution[d]
	}
	grid := spatial.NewGrid(cfg.H, cfg.Dim, res)

	domainMax := core.NewVec(cfg.Dim)
	for d := 0; d < cfg.Dim; d++ {
		domainMax[d] = float64(sc.Resolution[d]) * cfg.H
	}
	domain := spatial.Domain{Min: core.NewVec(cfg.Dim), Max: domainMax}

	policy := spatial.ClampAndZeroPenetration
	if cfg.Solver.ContainmentPolicy == "reflect" {
		policy = spatial.BoundaryParticleReflection
	}

	params := cfg.Params()

	if cfg.Solver.Kind == "wcsph" {
		s, err := simulation.NewWCSPHSolver(params, cfg.Solver.WCSPHStiffness, cfg.Solver.WCSPHGamma, fluid, boundary, grid, domain, policy)
		return s, domain, grid, err
	}
	s, err := simulation.NewIISPHSolver(params, fluid, boundary, grid, domain, policy)
	return s, domain, grid, err
}

func run(cfg *config.Config, headless bool, frameRate int64, particleRadius, explosionForce, explosionRadius float64, numWorkers int, snapshotPath string) error {
	if numWorkers > 0 {
		parallel.NumWorkers = numWorkers
	}

	solver, domain, grid, err := buildSolver(cfg)
	if err != nil {
		return fmt.Errorf("building solver: %w", err)
	}

	collector := telemetry.NewCollector()
	currentStep := 0
	var iisph *simulation.IISPHSolver
	if s, ok := solver.(*simulation.IISPHSolver); ok {
		iisph = s
		iisph.OnWarning = func(msg string) { collector.Warn(currentStep, msg) }
	}

	if headless {
		for step := 0; step < 1000; step++ {
			currentStep = step
			solver.Step()
			densities := snapshotFloats(solver.FluidCount(), solver.FluidDensity)
			pressures := snapshotFloats(solver.FluidCount(), solver.FluidPressure)
			iters, avgErr := 0, 0.0
			if iisph != nil {
				iters, avgErr = iisph.LastIterations, iisph.LastAvgDensity-cfg.Rho0
			}
			collector.Record(step, densities, pressures, iters, avgErr, false)
		}
		if snapshotPath != "" {
			return viz.SnapshotPNG(snapshotPath, solver, domain, 1200, 800, particleRadius)
		}
		return nil
	}

	renderer, window, err := viz.NewWindow()
	if err != nil {
		return err
	}
	defer viz.CleanupFonts()

	windowWidth, windowHeight := window.GetSize()

	var mouseX, mouseY int32
	running := true
	paused := false
	showDebug := false
	step := 0

	var mouseEffects []viz.MouseEffect
	const maxMouseEffects = 10
	blueRipple := sdl.Color{R: 50, G: 150, B: 255, A: 128}

	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.MouseMotionEvent:
				mouseX, mouseY = e.X, e.Y
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN {
					switch e.Keysym.Sym {
					case sdl.K_SPACE:
						paused = !paused
					case sdl.K_d:
						showDebug = !showDebug
					case sdl.K_b:
						point := input.ScreenToSimulation(int(mouseX), int(mouseY), int(windowWidth), int(windowHeight), domain.Max)
						input.ApplyExplosionForce(solver, point, explosionRadius, explosionForce*5)
					}
				}
			case *sdl.MouseButtonEvent:
				if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
					point := input.ScreenToSimulation(int(mouseX), int(mouseY), int(windowWidth), int(windowHeight), domain.Max)
					input.ApplyExplosionForce(solver, point, explosionRadius, explosionForce)

					if len(mouseEffects) < maxMouseEffects {
						mouseEffects = append(mouseEffects, viz.MouseEffect{
							X:         mouseX,
							Y:         mouseY,
							MaxRadius: math.Min(100, math.Max(20, explosionForce/10)),
							StartTime: uint32(sdl.GetTicks64()),
							Duration:  500,
							Color:     blueRipple,
						})
					}
				}
			}
		}

		if !paused {
			currentStep = step + 1
			solver.Step()
			step++

			densities := snapshotFloats(solver.FluidCount(), solver.FluidDensity)
			pressures := snapshotFloats(solver.FluidCount(), solver.FluidPressure)
			iters, avgErr, diverged := 0, 0.0, false
			if iisph != nil {
				iters, avgErr, diverged = iisph.LastIterations, iisph.LastAvgDensity-cfg.Rho0, iisph.LastDiverged
			}
			stats := collector.Record(step, densities, pressures, iters, avgErr, diverged)

			currentTime := uint32(sdl.GetTicks64())
			i := 0
			for _, effect := range mouseEffects {
				if currentTime-effect.StartTime < effect.Duration {
					mouseEffects[i] = effect
					i++
				}
			}
			mouseEffects = mouseEffects[:i]

			settings := viz.SimSettings{
				H:               cfg.H,
				Rho0:            cfg.Rho0,
				Nu:              cfg.Nu,
				Eta:             cfg.Eta,
				Omega:           cfg.Omega,
				FluidCount:      solver.FluidCount(),
				PressureIters:   stats.PressureIters,
				AvgDensityError: stats.AvgDensityError,
				Diverged:        stats.Diverged,
			}

			viz.RenderFrame(renderer, solver, domain, grid.CellSize, windowWidth, windowHeight, particleRadius,
				stats.PressureMean, stats.PressureStdDev, showDebug, mouseEffects, currentTime, settings)
		}

		time.Sleep(time.Duration(1e9 / frameRate))
	}
	return nil
}

func snapshotFloats(n int, get func(int) float64) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = get(i)
	}
	return out
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	var (
		configPath      string
		headless        bool
		snapshotPath    string
		frameRate       int64
		particleRadius  float64
		explosionForce  float64
		explosionRadius float64
		numWorkers      int
	)

	flag.StringVar(&configPath, "config", "", "Path to a YAML config overriding embedded defaults")
	flag.BoolVar(&headless, "headless", false, "Run without a window, stepping a fixed number of steps")
	flag.StringVar(&snapshotPath, "snapshot", "", "PNG path to write a still snapshot (headless mode only)")
	flag.Int64Var(&frameRate, "fps", 120, "Frame rate cap")
	flag.Float64Var(&particleRadius, "radius", 2.4, "Particle draw radius in pixels")
	flag.Float64Var(&explosionForce, "boom", 500.0, "Click-explosion force magnitude")
	flag.Float64Var(&explosionRadius, "boom-radius", 8.0, "Click-explosion radius in simulation units")
	flag.IntVar(&numWorkers, "workers", runtime.NumCPU(), "Number of parallel-for worker goroutines")

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if err := run(cfg, headless, frameRate, particleRadius, explosionForce, explosionRadius, numWorkers, snapshotPath); err != nil {
		log.Fatalf("fluidsim: %v", err)
	}
}
