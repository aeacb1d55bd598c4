package mandelbrot

import (
	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/misc"
	"mandelbrot/task"
)

// Bailout is the squared escape radius. A point escapes once x²+y² exceeds it.
const Bailout float32 = 4.0

// Mandelbrot holds everything needed to color any pixel of one image. It is read only once built.
type Mandelbrot struct {
	colorMap ColorMap
	height   int
	logger   bslogger.Logger
	scaleX   float32
	scaleY   float32
	viewport Viewport
	width    int
}

func NewMandelbrot(width int, height int, colorMap ColorMap, viewport Viewport) (Mandelbrot, error) {
	if width <= 0 {
		return Mandelbrot{}, configErrorf("width", width, "must be greater than 0")
	}
	if height <= 0 {
		return Mandelbrot{}, configErrorf("height", height, "must be greater than 0")
	}
	if colorMap == nil {
		return Mandelbrot{}, configErrorf("colorMap", "nil", "a color map is required")
	}
	if colorMap.MaxIterations() < 1 {
		return Mandelbrot{}, configErrorf("maxIterations", colorMap.MaxIterations(), "must be at least 1")
	}
	if err := viewport.Verify(); err != nil {
		return Mandelbrot{}, err
	}

	scaleX, scaleY := viewport.Scale(width, height)
	return Mandelbrot{
		colorMap: colorMap,
		height:   height,
		logger:   bslogger.NewLogger("Mandelbrot", bslogger.Normal, nil),
		scaleX:   scaleX,
		scaleY:   scaleY,
		viewport: viewport,
		width:    width,
	}, nil
}

// EscapeTime counts the iterations of z = z² + c, from z = 0 and c = (x0, y0), until |z| > 2 or maxIterations is
// reached. A result of maxIterations means the point never escaped.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Unoptimized_na%C3%AFve_escape_time_algorithm
func EscapeTime(x0 float32, y0 float32, maxIterations int) int {
	var x, y float32
	iteration := 0
	for float32(x*x)+float32(y*y) <= Bailout && iteration < maxIterations {
		xtemp := float32(x*x) - float32(y*y) + x0
		y = float32(2*x*y) + y0
		x = xtemp
		iteration++
	}
	return iteration
}

// PixelColor is the color of pixel (px, py) for the given viewport scale. It depends on nothing else, so pixels can be
// computed in any order.
func PixelColor(px int, py int, scaleX float32, scaleY float32, viewport Viewport, colorMap ColorMap) misc.RGB {
	x0, y0 := viewport.PixelToComplex(px, py, scaleX, scaleY)
	return colorMap.Color(EscapeTime(x0, y0, colorMap.MaxIterations()))
}

func (m *Mandelbrot) ColorAt(coordinate task.Coordinate) misc.RGB {
	return PixelColor(coordinate.Column, coordinate.Row, m.scaleX, m.scaleY, m.viewport, m.colorMap)
}

// EscapeTimeAt is the raw iteration count behind the color of a pixel
func (m *Mandelbrot) EscapeTimeAt(coordinate task.Coordinate) int {
	x0, y0 := m.viewport.PixelToComplex(coordinate.Column, coordinate.Row, m.scaleX, m.scaleY)
	return EscapeTime(x0, y0, m.colorMap.MaxIterations())
}

// Generate renders the whole image, visiting pixels in the order given by generation
func (m *Mandelbrot) Generate(generation task.Generation) (*misc.PixelGrid, error) {
	tasks, err := task.Split(generation, m.width, m.height)
	if err != nil {
		return nil, err
	}

	grid := misc.NewPixelGrid(m.width, m.height)
	for i := range tasks {
		m.logger.Debugf("Processing %s", tasks[i].String())
		tasks[i].Process(m.ColorAt)
		tasks[i].Paint(grid)
	}
	return grid, nil
}

// Generate renders a width x height image of viewport colored by colorMap
func Generate(width int, height int, colorMap ColorMap, viewport Viewport) (*misc.PixelGrid, error) {
	return GenerateOrdered(width, height, colorMap, viewport, task.Column)
}

// GenerateOrdered is Generate with an explicit pixel visiting order. The output does not depend on it.
func GenerateOrdered(width int, height int, colorMap ColorMap, viewport Viewport, generation task.Generation) (*misc.PixelGrid, error) {
	m, err := NewMandelbrot(width, height, colorMap, viewport)
	if err != nil {
		return nil, err
	}
	return m.Generate(generation)
}

// RenderMandelbrot builds the color map for mode and renders the image
func RenderMandelbrot(width int, height int, mode Mode, maxIterations int, viewport Viewport) (*misc.PixelGrid, error) {
	colorMap, err := NewColorMap(mode, maxIterations, nil)
	if err != nil {
		return nil, err
	}
	return Generate(width, height, colorMap, viewport)
}

// Render renders the image described by verified settings
func Render(s Settings) (*misc.PixelGrid, error) {
	if err := s.Verify(); err != nil {
		return nil, err
	}
	gradient, err := GradientByName(s.Gradient)
	if err != nil {
		return nil, err
	}
	colorMap, err := NewColorMap(s.Mode, s.MaxIterations, gradient)
	if err != nil {
		return nil, err
	}
	return GenerateOrdered(s.Width, s.Height, colorMap, *s.Viewport, s.TaskGeneration)
}
