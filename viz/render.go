// Package viz renders a live snapshot of a running simulation with SDL2,
// and exports still PNG snapshots of the same state through fogleman/gg
// for headless runs. The solver packages never import this package: it
// only reads through the simulation.Solver accessor surface.
package viz

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/veandco/go-sdl2/sdl"

	"fluids/simulation"
	"fluids/spatial"
)

func NewWindow() (*sdl.Renderer, *sdl.Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, err
	}

	window, err := sdl.CreateWindow("Fluid Simulation", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, 1200, 800, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, nil, err
	}

	fontCache.initialized = true
	fontCache.fontSize = 14

	return renderer, window, nil
}

// CleanupFonts resets font cache settings.
func CleanupFonts() {
	fontCache.initialized = false
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Fast circle drawing functions using different techniques.

func drawFilledCircle(renderer *sdl.Renderer, centerX, centerY, radius int32) {
	if radius <= 0 {
		renderer.DrawPoint(centerX, centerY)
		return
	}
	if radius <= 2 {
		renderer.DrawLine(centerX-radius, centerY, centerX+radius, centerY)
		renderer.DrawLine(centerX, centerY-radius, centerX, centerY+radius)
		renderer.DrawPoint(centerX-radius+1, centerY-radius+1)
		renderer.DrawPoint(centerX+radius-1, centerY-radius+1)
		renderer.DrawPoint(centerX-radius+1, centerY+radius-1)
		renderer.DrawPoint(centerX+radius-1, centerY+radius-1)
		return
	}

	radiusSq := radius * radius
	for y := -radius; y <= radius; y++ {
		width := int32(math.Sqrt(float64(radiusSq - y*y)))
		renderer.DrawLine(centerX-width, centerY+y, centerX+width, centerY+y)
	}
	drawCircleOutline(renderer, centerX, centerY, radius)
}

func drawCircleOutline(renderer *sdl.Renderer, centerX, centerY, radius int32) {
	x := radius
	y := int32(0)
	err := int32(0)

	for x >= y {
		renderer.DrawPoint(centerX+x, centerY+y)
		renderer.DrawPoint(centerX+y, centerY+x)
		renderer.DrawPoint(centerX-y, centerY+x)
		renderer.DrawPoint(centerX-x, centerY+y)
		renderer.DrawPoint(centerX-x, centerY-y)
		renderer.DrawPoint(centerX-y, centerY-x)
		renderer.DrawPoint(centerX+y, centerY-x)
		renderer.DrawPoint(centerX+x, centerY-y)

		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func drawCircle(renderer *sdl.Renderer, centerX, centerY, radius int32) {
	if radius <= 1 {
		renderer.DrawPoint(centerX, centerY)
		return
	}
	drawFilledCircle(renderer, centerX, centerY, radius)
}

// scaleFactors returns the pixel-per-simulation-unit scale along each axis.
func scaleFactors(domain spatial.Domain, windowWidth, windowHeight int32) (float32, float32) {
	extentX := domain.Max[0] - domain.Min[0]
	extentY := domain.Max[1] - domain.Min[1]
	return float32(windowWidth) / float32(extentX), float32(windowHeight) / float32(extentY)
}

// renderGrid draws a visual representation of the spatial grid.
func renderGrid(renderer *sdl.Renderer, cellSize float64, domain spatial.Domain, windowWidth, windowHeight int32) {
	scaleX, scaleY := scaleFactors(domain, windowWidth, windowHeight)
	renderer.SetDrawColor(50, 50, 150, 100)

	for x := domain.Min[0]; x <= domain.Max[0]; x += cellSize {
		x1 := int32((x - domain.Min[0]) * float64(scaleX))
		renderer.DrawLine(x1, 0, x1, windowHeight)
	}
	for y := domain.Min[1]; y <= domain.Max[1]; y += cellSize {
		y1 := int32((y - domain.Min[1]) * float64(scaleY))
		renderer.DrawLine(0, y1, windowWidth, y1)
	}
}

// renderVelocities draws a velocity vector for each fluid particle.
func renderVelocities(renderer *sdl.Renderer, s simulation.Solver, domain spatial.Domain, windowWidth, windowHeight int32) {
	scaleX, scaleY := scaleFactors(domain, windowWidth, windowHeight)
	const velocityScale = 3.0
	renderer.SetDrawColor(255, 50, 50, 200)

	for i := 0; i < s.FluidCount(); i++ {
		pos := s.FluidPosition(i)
		vel := s.FluidVelocity(i)
		if vel.Length() < 0.1 {
			continue
		}

		x1 := int32((pos[0] - domain.Min[0]) * float64(scaleX))
		y1 := int32((pos[1] - domain.Min[1]) * float64(scaleY))
		x2 := int32((pos[0] + vel[0]*velocityScale - domain.Min[0]) * float64(scaleX))
		y2 := int32((pos[1] + vel[1]*velocityScale - domain.Min[1]) * float64(scaleY))
		renderer.DrawLine(x1, y1, x2, y2)
	}
}

// MouseEffect is a transient ripple drawn at an interaction point.
type MouseEffect struct {
	X, Y      int32
	MaxRadius float64
	StartTime uint32
	Duration  uint32
	Color     sdl.Color
}

// renderMouseEffects draws expanding, fading ripples for recent interactions.
func renderMouseEffects(renderer *sdl.Renderer, effects []MouseEffect, currentTime uint32) {
	oldR, oldG, oldB, oldA, _ := renderer.GetDrawColor()
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	for i := len(effects) - 1; i >= 0; i-- {
		effect := &effects[i]
		age := currentTime - effect.StartTime
		if age > effect.Duration {
			continue
		}

		progress := float64(age) / float64(effect.Duration)
		easeOutQuad := 1.0 - (1.0-progress)*(1.0-progress)
		currentOpacity := uint8(float64(effect.Color.A) * (1.0 - progress))
		currentRadius := int32(effect.MaxRadius * easeOutQuad)

		for r := int32(0); r <= currentRadius; r += 2 {
			fadingOpacity := uint8(float64(currentOpacity) * (1.0 - float64(r)/float64(currentRadius)))
			renderer.SetDrawColor(effect.Color.R, effect.Color.G, effect.Color.B, fadingOpacity)
			drawCircleOutline(renderer, effect.X, effect.Y, r)
		}
	}

	renderer.SetDrawColor(oldR, oldG, oldB, oldA)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_NONE)
}

// ColorCache holds precomputed RGB for fast particle batching by color.
type ColorCache struct {
	r, g, b uint8
}

var colorCache [256]ColorCache

// initColorCache fills a smooth blue->cyan->white gradient keyed by
// normalized pressure, so coloring a frame is a lookup, not an HSV compute.
func initColorCache() {
	for i := 0; i < 256; i++ {
		normalizedPressure := float64(i) / 255.0
		var r, g, b uint8
		if normalizedPressure < 0.5 {
			t := normalizedPressure * 2.0
			r = uint8(10 + 70*t)
			g = uint8(120 * t)
			b = uint8(180 + 50*t)
		} else {
			t := (normalizedPressure - 0.5) * 2.0
			r = uint8(80 + 175*t)
			g = uint8(120 + 135*t)
			b = uint8(230 + 25*t)
		}
		colorCache[i] = ColorCache{r, g, b}
	}
}

// ParticleBatch groups same-colored particle points for a single draw call.
type ParticleBatch struct {
	color  ColorCache
	points []sdl.Point
}

func getColor(normalizedPressure float64) ColorCache {
	if normalizedPressure < 0 {
		normalizedPressure = 0
	} else if normalizedPressure > 1 {
		normalizedPressure = 1
	}
	return colorCache[int(normalizedPressure*255)]
}

// SimSettings holds the current solver statistics for the debug overlay:
// tunable parameters plus convergence and divergence status.
type SimSettings struct {
	H                float64
	Rho0             float64
	Nu               float64
	Eta              float64
	Omega            float64
	FluidCount       int
	PressureIters    int
	AvgDensityError  float64
	Diverged         bool
}

var colorCacheInitialized bool

// RenderFrame draws one frame: optional debug overlays underneath, then
// particles colored by pressure, then velocity vectors and effects on top.
func RenderFrame(
	renderer *sdl.Renderer,
	s simulation.Solver,
	domain spatial.Domain,
	cellSize float64,
	windowWidth, windowHeight int32,
	particleRadius float64,
	meanPressure, stdPressure float64,
	showDebug bool,
	mouseEffects []MouseEffect,
	currentTime uint32,
	settings SimSettings,
) {
	if !colorCacheInitialized {
		initColorCache()
		colorCacheInitialized = true
	}

	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.Clear()

	scaleX, scaleY := scaleFactors(domain, windowWidth, windowHeight)

	if showDebug {
		renderGrid(renderer, cellSize, domain, windowWidth, windowHeight)
	}

	colorBatches := make(map[ColorCache]*ParticleBatch)
	pressureOffset := meanPressure
	pressureScale := math.Max(stdPressure, 1.0) * 3.0
	if pressureScale < 1000.0 {
		pressureScale = 1000.0
	}

	for i := 0; i < s.FluidCount(); i++ {
		pos := s.FluidPosition(i)
		relPressure := s.FluidPressure(i) - pressureOffset
		normalizedPressure := sigmoid(relPressure / pressureScale * 2.0)
		color := getColor(normalizedPressure)

		batch, exists := colorBatches[color]
		if !exists {
			batch = &ParticleBatch{color: color, points: make([]sdl.Point, 0, 128)}
			colorBatches[color] = batch
		}

		x := int32((pos[0] - domain.Min[0]) * float64(scaleX))
		y := int32((pos[1] - domain.Min[1]) * float64(scaleY))
		batch.points = append(batch.points, sdl.Point{X: x, Y: y})
	}

	for color, batch := range colorBatches {
		renderer.SetDrawColor(color.r, color.g, color.b, 255)
		for _, point := range batch.points {
			drawCircle(renderer, point.X, point.Y, int32(particleRadius))
		}
	}

	renderer.SetDrawColor(120, 120, 120, 255)
	for j := 0; j < s.BoundaryCount(); j++ {
		pos := s.BoundaryPosition(j)
		x := int32((pos[0] - domain.Min[0]) * float64(scaleX))
		y := int32((pos[1] - domain.Min[1]) * float64(scaleY))
		renderer.DrawPoint(x, y)
	}

	if showDebug {
		renderVelocities(renderer, s, domain, windowWidth, windowHeight)
	}

	if len(mouseEffects) > 0 {
		renderMouseEffects(renderer, mouseEffects, currentTime)
	}

	if showDebug {
		renderSettingsDisplay(renderer, windowWidth, settings)
	}

	renderer.Present()
}

// SnapshotPNG rasterizes boundary and fluid particles with fogleman/gg and
// writes the image to path, for headless runs that need a still image
// without an SDL window. Fluid particles are colored by Solver.FluidColor
// (density), not by pressure as in RenderFrame, and no overlays are drawn.
func SnapshotPNG(path string, s simulation.Solver, domain spatial.Domain, width, height int, particleRadius float64) error {
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	extentX := domain.Max[0] - domain.Min[0]
	extentY := domain.Max[1] - domain.Min[1]
	scaleX := float64(width) / extentX
	scaleY := float64(height) / extentY

	dc.SetRGB(0.5, 0.5, 0.5)
	for j := 0; j < s.BoundaryCount(); j++ {
		pos := s.BoundaryPosition(j)
		x := (pos[0] - domain.Min[0]) * scaleX
		y := (pos[1] - domain.Min[1]) * scaleY
		dc.DrawPoint(x, y, 1)
	}
	dc.Fill()

	for i := 0; i < s.FluidCount(); i++ {
		pos := s.FluidPosition(i)
		c := s.FluidColor(i)
		dc.SetRGB(c[0], c[1], c[2])
		x := (pos[0] - domain.Min[0]) * scaleX
		y := (pos[1] - domain.Min[1]) * scaleY
		dc.DrawCircle(x, y, particleRadius)
		dc.Fill()
	}

	return dc.SavePNG(path)
}

// FontCache holds basic text rendering settings.
type FontCache struct {
	initialized bool
	fontSize    int
}

var fontCache FontCache

func initFont(renderer *sdl.Renderer, size int) error {
	if !fontCache.initialized || fontCache.fontSize != size {
		fontCache.fontSize = size
		fontCache.initialized = true
	}
	return nil
}

// renderText rasterizes text into a texture using the bitmap font below.
func renderText(renderer *sdl.Renderer, text string, textColor sdl.Color, size int) (*sdl.Texture, int32, int32, error) {
	if err := initFont(renderer, size); err != nil {
		return nil, 0, 0, err
	}

	charWidth := int32(size * 2 / 3)
	letterSpacing := int32(size / 8)
	width := int32(len(text)) * (charWidth + letterSpacing)
	height := int32(size * 3 / 2)

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA8888), sdl.TEXTUREACCESS_TARGET, width, height)
	if err != nil {
		return nil, 0, 0, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	originalTarget := renderer.GetRenderTarget()
	renderer.SetRenderTarget(texture)
	renderer.SetDrawColor(0, 0, 0, 0)
	renderer.Clear()
	renderer.SetDrawColor(textColor.R, textColor.G, textColor.B, textColor.A)

	for i, char := range text {
		x := int32(i) * (charWidth + letterSpacing)
		if char == ' ' {
			continue
		}
		drawBitmapChar(renderer, char, x, 0, charWidth, height)
	}

	renderer.SetRenderTarget(originalTarget)
	return texture, width, height, nil
}

// drawBitmapChar draws a character using simple line-segment bitmap shapes.
func drawBitmapChar(renderer *sdl.Renderer, char rune, x, y, width, height int32) {
	charHeight := height - 2
	middle := y + height/2
	top := y + 2
	bottom := y + charHeight

	switch char {
	case 'A', 'a':
		renderer.DrawLine(x+width/2, top, x, bottom)
		renderer.DrawLine(x+width/2, top, x+width, bottom)
		renderer.DrawLine(x+width/4, middle+2, x+width*3/4, middle+2)
	case 'B', 'b':
		renderer.DrawLine(x, top, x, bottom)
		renderer.DrawLine(x, top, x+width*2/3, top)
		renderer.DrawLine(x, middle, x+width*2/3, middle)
		renderer.DrawLine(x, bottom, x+width*2/3, bottom)
		renderer.DrawLine(x+width*2/3, top, x+width, top+height/4)
		renderer.DrawLine(x+width, top+height/4, x+width*2/3, middle)
		renderer.DrawLine(x+width*2/3, middle, x+width, middle+height/4)
		renderer.DrawLine(x+width, middle+height/4, x+width*2/3, bottom)
	case 'C', 'c':
		renderer.DrawLine(x+width, top+height/5, x+width*2/3, top)
		renderer.DrawLine(x+width*2/3, top, x+width/3, top)
		renderer.DrawLine(x+width/3, top, x, top+height/5)
		renderer.DrawLine(x, top+height/5, x, bottom-height/5)
		renderer.DrawLine(x, bottom-height/5, x+width/3, bottom)
		renderer.DrawLine(x+width/3, bottom, x+width*2/3, bottom)
		renderer.DrawLine(x+width*2/3, bottom, x+width, bottom-height/5)
	case 'D', 'd':
		renderer.DrawLine(x, top, x, bottom)
		renderer.DrawLine(x, top, x+width*2/3, top)
		renderer.DrawLine(x, bottom, x+width*2/3, bottom)
		renderer.DrawLine(x+width*2/3, top, x+width, middle)
		renderer.DrawLine(x+width, middle, x+width*2/3, bottom)
	case 'E', 'e':
		renderer.DrawLine(x, top, x, bottom)
		renderer.DrawLine(x, top, x+width, top)
		renderer.DrawLine(x, middle, x+width*3/4, middle)
		renderer.DrawLine(x, bottom, x+width, bottom)
	case 'F', 'f':
		renderer.DrawLine(x, top, x, bottom)
		renderer.DrawLine(x, top, x+width, top)
		renderer.DrawLine(x, middle, x+width*3/4, middle)
	case 'G', 'g':
		renderer.DrawLine(x+width, top+height/5, x+width*2/3, top)
		renderer.DrawLine(x+width*2/3, top, x+width/3, top)
		renderer.DrawLine(x+width/3, top, x, top+height/5)
		renderer.DrawLine(x, top+height/5, x, bottom-height/5)
		renderer.DrawLine(x, bottom-height/5, x+width/3, bottom)
		renderer.DrawLine(x+width/3, bottom, x+width*2/3, bottom)
		renderer.DrawLine(x+width*2/3, bottom, x+width, bottom-height/5)
		renderer.DrawLine(x+width, bottom-height/5, x+width, middle)
		renderer.DrawLine(x+width, middle, x+width*2/3, middle)
	case 'H', 'h':
		renderer.DrawLine(x, top, x, bottom)
		renderer.DrawLine(x+width, top, x+width, bottom)
		renderer.DrawLine(x, middle, x+width, middle)
	case 'I', 'i':
		renderer.DrawLine(x+width/2, top, x+width/2, bottom)
	case 'L', 'l':
		renderer.DrawLine(x, top, x, bottom)
		renderer.DrawLine(x, bottom, x+width, bottom)
	case 'M', 'm':
		renderer.DrawLine(x, bottom, x, top)
		renderer.DrawLine(x+width, bottom, x+width, top)
		renderer.DrawLine(x, top, x+width/2, middle)
		renderer.DrawLine(x+width/2, middle, x+width, top)
	case 'N', 'n':
		renderer.DrawLine(x, bottom, x, top)
		renderer.DrawLine(x+width, bottom, x+width, top)
		renderer.DrawLine(x, top, x+width, bottom)
	case 'O', 'o':
		renderer.DrawLine(x+width/3, top, x+width*2/3, top)
		renderer.DrawLine(x+width/3, bottom, x+width*2/3, bottom)
		renderer.DrawLine(x, top+height/4, x, bottom-height/4)
		renderer.DrawLine(x+width, top+height/4, x+width, bottom-height/4)
		renderer.DrawLine(x+width/3, top, x, top+height/4)
		renderer.DrawLine(x+width*2/3, top, x+width, top+height/4)
		renderer.DrawLine(x, bottom-height/4, x+width/3, bottom)
		renderer.DrawLine(x+width, bottom-height/4, x+width*2/3, bottom)
	case 'P', 'p':
		renderer.DrawLine(x, top, x, bottom)
		renderer.DrawLine(x, top, x+width*2/3, top)
		renderer.DrawLine(x, middle, x+width*2/3, middle)
		renderer.DrawLine(x+width*2/3, top, x+width, top+height/4)
		renderer.DrawLine(x+width, top+height/4, x+width*2/3, middle)
	case 'R', 'r':
		renderer.DrawLine(x, top, x, bottom)
		renderer.DrawLine(x, top, x+width*2/3, top)
		renderer.DrawLine(x, middle, x+width*2/3, middle)
		renderer.DrawLine(x+width*2/3, top, x+width, top+height/4)
		renderer.DrawLine(x+width, top+height/4, x+width*2/3, middle)
		renderer.DrawLine(x+width*2/3, middle, x+width, bottom)
	case 'S', 's':
		renderer.DrawLine(x+width, top+height/5, x+width*2/3, top)
		renderer.DrawLine(x+width*2/3, top, x+width/3, top)
		renderer.DrawLine(x+width/3, top, x, top+height/5)
		renderer.DrawLine(x, top+height/5, x+width/3, middle)
		renderer.DrawLine(x+width/3, middle, x+width*2/3, middle)
		renderer.DrawLine(x+width*2/3, middle, x+width, bottom-height/5)
		renderer.DrawLine(x+width, bottom-height/5, x+width*2/3, bottom)
		renderer.DrawLine(x+width*2/3, bottom, x+width/3, bottom)
		renderer.DrawLine(x+width/3, bottom, x, bottom-height/5)
	case 'T', 't':
		renderer.DrawLine(x, top, x+width, top)
		renderer.DrawLine(x+width/2, top, x+width/2, bottom)
	case 'U', 'u':
		renderer.DrawLine(x, top, x, bottom-height/4)
		renderer.DrawLine(x+width, top, x+width, bottom-height/4)
		renderer.DrawLine(x, bottom-height/4, x+width/3, bottom)
		renderer.DrawLine(x+width/3, bottom, x+width*2/3, bottom)
		renderer.DrawLine(x+width*2/3, bottom, x+width, bottom-height/4)
	case 'V', 'v':
		renderer.DrawLine(x, top, x+width/2, bottom)
		renderer.DrawLine(x+width/2, bottom, x+width, top)
	case 'W', 'w':
		renderer.DrawLine(x, top, x+width/4, bottom)
		renderer.DrawLine(x+width/4, bottom, x+width/2, middle)
		renderer.DrawLine(x+width/2, middle, x+width*3/4, bottom)
		renderer.DrawLine(x+width*3/4, bottom, x+width, top)
	case 'X', 'x':
		renderer.DrawLine(x, top, x+width, bottom)
		renderer.DrawLine(x+width, top, x, bottom)
	case 'Y', 'y':
		renderer.DrawLine(x, top, x+width/2, middle)
		renderer.DrawLine(x+width, top, x+width/2, middle)
		renderer.DrawLine(x+width/2, middle, x+width/2, bottom)
	case 'Z', 'z':
		renderer.DrawLine(x, top, x+width, top)
		renderer.DrawLine(x+width, top, x, bottom)
		renderer.DrawLine(x, bottom, x+width, bottom)
	case ':':
		renderer.DrawPoint(x+width/2, y+height/3)
		renderer.DrawPoint(x+width/2, y+height*2/3)
	case '.':
		renderer.DrawPoint(x+width/2, y+height*4/5)
	case ',':
		renderer.DrawLine(x+width/2, y+height*2/3, x+width/3, y+height)
	case '-':
		renderer.DrawLine(x, middle, x+width, middle)
	case '+':
		renderer.DrawLine(x, middle, x+width, middle)
		renderer.DrawLine(x+width/2, top+2, x+width/2, bottom-2)
	case '|':
		renderer.DrawLine(x+width/2, top, x+width/2, bottom)
	case '1':
		renderer.DrawLine(x+width/2, top, x+width/2, bottom)
		renderer.DrawLine(x+width/4, top+height/4, x+width/2, top)
	case '2':
		renderer.DrawLine(x+width/4, top, x+width*3/4, top)
		renderer.DrawLine(x+width*3/4, top, x+width, top+height/4)
		renderer.DrawLine(x+width, top+height/4, x+width*3/4, middle)
		renderer.DrawLine(x+width*3/4, middle, x, bottom)
		renderer.DrawLine(x, bottom, x+width, bottom)
	case '3':
		renderer.DrawLine(x, top, x+width*3/4, top)
		renderer.DrawLine(x+width*3/4, top, x+width, top+height/4)
		renderer.DrawLine(x+width, top+height/4, x+width*3/4, middle)
		renderer.DrawLine(x+width*3/4, middle, x+width, middle+height/4)
		renderer.DrawLine(x+width, middle+height/4, x+width*3/4, bottom)
		renderer.DrawLine(x+width*3/4, bottom, x, bottom)
	case '4':
		renderer.DrawLine(x+width/4, top, x+width/4, middle)
		renderer.DrawLine(x+width/4, middle, x+width, middle)
		renderer.DrawLine(x+width*3/4, top, x+width*3/4, bottom)
	case '5':
		renderer.DrawLine(x+width, top, x, top)
		renderer.DrawLine(x, top, x, middle)
		renderer.DrawLine(x, middle, x+width*3/4, middle)
		renderer.DrawLine(x+width*3/4, middle, x+width, middle+height/4)
		renderer.DrawLine(x+width, middle+height/4, x+width*3/4, bottom)
		renderer.DrawLine(x+width*3/4, bottom, x+width/4, bottom)
	case '6':
		renderer.DrawLine(x+width, top, x+width/2, top)
		renderer.DrawLine(x+width/2, top, x, middle)
		renderer.DrawLine(x, middle, x, bottom-height/4)
		renderer.DrawLine(x, bottom-height/4, x+width/3, bottom)
		renderer.DrawLine(x+width/3, bottom, x+width*2/3, bottom)
		renderer.DrawLine(x+width*2/3, bottom, x+width, bottom-height/4)
		renderer.DrawLine(x+width, bottom-height/4, x+width, middle)
		renderer.DrawLine(x+width, middle, x, middle)
	case '7':
		renderer.DrawLine(x, top, x+width, top)
		renderer.DrawLine(x+width, top, x+width/3, bottom)
	case '8':
		renderer.DrawLine(x+width/3, top, x+width*2/3, top)
		renderer.DrawLine(x+width/3, bottom, x+width*2/3, bottom)
		renderer.DrawLine(x+width/3, middle, x+width*2/3, middle)
		renderer.DrawLine(x+width/3, top, x, top+height/4)
		renderer.DrawLine(x, top+height/4, x+width/3, middle)
		renderer.DrawLine(x+width*2/3, top, x+width, top+height/4)
		renderer.DrawLine(x+width, top+height/4, x+width*2/3, middle)
		renderer.DrawLine(x+width/3, middle, x, middle+height/4)
		renderer.DrawLine(x, middle+height/4, x+width/3, bottom)
		renderer.DrawLine(x+width*2/3, middle, x+width, middle+height/4)
		renderer.DrawLine(x+width, middle+height/4, x+width*2/3, bottom)
	case '9':
		renderer.DrawLine(x+width/3, top, x+width*2/3, top)
		renderer.DrawLine(x+width*2/3, top, x+width, top+height/4)
		renderer.DrawLine(x+width, top+height/4, x+width, middle)
		renderer.DrawLine(x+width, middle, x+width/2, bottom)
		renderer.DrawLine(x+width/2, bottom, x, bottom)
		renderer.DrawLine(x+width/3, top, x, top+height/4)
		renderer.DrawLine(x, top+height/4, x, middle)
		renderer.DrawLine(x, middle, x+width, middle)
	case '0':
		renderer.DrawLine(x+width/3, top, x+width*2/3, top)
		renderer.DrawLine(x+width/3, bottom, x+width*2/3, bottom)
		renderer.DrawLine(x+width/3, top, x, top+height/4)
		renderer.DrawLine(x, top+height/4, x, bottom-height/4)
		renderer.DrawLine(x, bottom-height/4, x+width/3, bottom)
		renderer.DrawLine(x+width*2/3, top, x+width, top+height/4)
		renderer.DrawLine(x+width, top+height/4, x+width, bottom-height/4)
		renderer.DrawLine(x+width, bottom-height/4, x+width*2/3, bottom)
	default:
		renderer.DrawRect(&sdl.Rect{X: x + 1, Y: top + 1, W: width - 2, H: charHeight - 2})
	}
}

// renderSettingsDisplay shows current solver parameters and convergence
// status on screen.
func renderSettingsDisplay(renderer *sdl.Renderer, windowWidth int32, settings SimSettings) {
	oldR, oldG, oldB, oldA, _ := renderer.GetDrawColor()
	var oldBlendMode sdl.BlendMode
	renderer.GetDrawBlendMode(&oldBlendMode)

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(0, 0, 0, 180)

	panelWidth := int32(260)
	panelHeight := int32(180)
	panelX := windowWidth - panelWidth - 10
	panelY := int32(10)
	panel := sdl.Rect{X: panelX, Y: panelY, W: panelWidth, H: panelHeight}
	renderer.FillRect(&panel)

	renderer.SetDrawColor(100, 200, 255, 255)
	renderer.DrawRect(&panel)

	lineSpacing := int32(22)
	dotSize := int32(6)
	startY := panelY + 15
	fontSize := 14

	title := "Solver Status"
	if settings.Diverged {
		title = "Solver Status (diverged)"
	}
	titleTexture, titleWidth, titleHeight, err := renderText(renderer, title, sdl.Color{R: 220, G: 220, B: 255, A: 255}, fontSize+2)
	if err == nil {
		defer titleTexture.Destroy()
		titleRect := &sdl.Rect{X: panelX + (panelWidth-titleWidth)/2, Y: panelY + 8, W: titleWidth, H: titleHeight}
		renderer.Copy(titleTexture, nil, titleRect)
	}

	drawParamLine := func(lineNum int32, label string, color sdl.Color, value float64, format string) {
		y := startY + lineNum*lineSpacing + titleHeight + 5

		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		dotRect := sdl.Rect{X: panelX + 10, Y: y + 4, W: dotSize, H: dotSize}
		renderer.FillRect(&dotRect)

		labelTexture, labelWidth, labelHeight, err := renderText(renderer, label, sdl.Color{R: 200, G: 200, B: 200, A: 255}, fontSize)
		if err == nil {
			defer labelTexture.Destroy()
			labelRect := &sdl.Rect{X: panelX + 20, Y: y, W: labelWidth, H: labelHeight}
			renderer.Copy(labelTexture, nil, labelRect)
		}

		valStr := fmt.Sprintf(format, value)
		valueTexture, valueWidth, valueHeight, err := renderText(renderer, valStr, sdl.Color{R: 180, G: 180, B: 180, A: 255}, fontSize-1)
		if err == nil {
			defer valueTexture.Destroy()
			valueRect := &sdl.Rect{X: panelX + 160, Y: y, W: valueWidth, H: valueHeight}
			renderer.Copy(valueTexture, nil, valueRect)
		}
	}

	drawParamLine(0, "h", sdl.Color{R: 100, G: 255, B: 100, A: 255}, settings.H, "%.3f")
	drawParamLine(1, "rho0", sdl.Color{R: 100, G: 100, B: 255, A: 255}, settings.Rho0, "%.0f")
	drawParamLine(2, "nu", sdl.Color{R: 255, G: 255, B: 100, A: 255}, settings.Nu, "%.3f")
	drawParamLine(3, "eta", sdl.Color{R: 255, G: 150, B: 0, A: 255}, settings.Eta, "%.4f")
	drawParamLine(4, "omega", sdl.Color{R: 0, G: 200, B: 200, A: 255}, settings.Omega, "%.2f")
	drawParamLine(5, "particles", sdl.Color{R: 255, G: 100, B: 255, A: 255}, float64(settings.FluidCount), "%.0f")
	drawParamLine(6, "iterations", sdl.Color{R: 255, G: 255, B: 255, A: 255}, float64(settings.PressureIters), "%.0f")
	drawParamLine(7, "density err", sdl.Color{R: 255, G: 100, B: 100, A: 255}, settings.AvgDensityError, "%.2f")

	helpText := "D: Toggle Debug | Space: Pause"
	helpTexture, helpWidth, helpHeight, err := renderText(renderer, helpText, sdl.Color{R: 180, G: 180, B: 180, A: 255}, 12)
	if err == nil {
		defer helpTexture.Destroy()
		helpTextRect := &sdl.Rect{X: panelX + (panelWidth-helpWidth)/2, Y: panelY + panelHeight - 20, W: helpWidth, H: helpHeight}
		renderer.Copy(helpTexture, nil, helpTextRect)
	}

	renderer.SetDrawColor(oldR, oldG, oldB, oldA)
	renderer.SetDrawBlendMode(oldBlendMode)
}
