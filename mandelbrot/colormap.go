package mandelbrot

import (
	"fmt"
	"math"
	"strings"

	"mandelbrot/misc"
)

// ColorMap turns an escape time into a pixel color. Only Grayscale and Colored implement it.
type ColorMap interface {
	Color(iteration int) misc.RGB
	MaxIterations() int

	colorMap()
}

// Mode selects one of the two ColorMap variants
type Mode int

const (
	Grayscale Mode = iota
	Colored
)

func (m Mode) String() string {
	switch m {
	case Grayscale:
		return "grayscale"
	case Colored:
		return "colored"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gs", "grayscale", "greyscale":
		return Grayscale, nil
	case "c", "colored", "coloured", "color":
		return Colored, nil
	}
	return Grayscale, configErrorf("mode", s, "expected 'c' for colored or 'gs' for grayscale")
}

// NewColorMap builds the ColorMap for mode. gradient is only used by Colored and may be nil for the default.
func NewColorMap(mode Mode, maxIterations int, gradient Gradient) (ColorMap, error) {
	switch mode {
	case Grayscale:
		return NewGrayscale(maxIterations)
	case Colored:
		return NewColoredGradient(maxIterations, gradient)
	}
	return nil, configErrorf("mode", mode, "unknown color mode")
}

// GrayscaleMap paints points inside the set black and escaping points a gray proportional to their escape time
type GrayscaleMap struct {
	maxIterations int
}

func NewGrayscale(maxIterations int) (*GrayscaleMap, error) {
	if maxIterations < 1 {
		return nil, configErrorf("maxIterations", maxIterations, "must be at least 1")
	}
	return &GrayscaleMap{maxIterations: maxIterations}, nil
}

func (g *GrayscaleMap) Color(iteration int) misc.RGB {
	if iteration == g.maxIterations {
		return misc.Black
	}
	// Out of range counts saturate rather than wrap around when converted to 8 bits.
	if iteration < 0 {
		iteration = 0
	} else if iteration > g.maxIterations {
		iteration = g.maxIterations
	}
	intensity := uint8(math.Round(float64(float32(iteration) / float32(g.maxIterations) * 255.0)))
	return misc.RGB{R: intensity, G: intensity, B: intensity}
}

func (g *GrayscaleMap) MaxIterations() int {
	return g.maxIterations
}

func (g *GrayscaleMap) colorMap() {}

// ColoredMap paints points inside the set black and samples a gradient for escaping points.
// The escape time is normalized by maxIterations-1, unlike GrayscaleMap which divides by maxIterations.
type ColoredMap struct {
	maxIterations int
	gradient      Gradient
	lookup        []misc.RGB
}

func NewColored(maxIterations int) (*ColoredMap, error) {
	return NewColoredGradient(maxIterations, nil)
}

func NewColoredGradient(maxIterations int, gradient Gradient) (*ColoredMap, error) {
	if maxIterations <= 1 {
		return nil, configErrorf("maxIterations", maxIterations, "must be greater than 1 for the colored mode")
	}
	if gradient == nil {
		gradient = turbo{}
	}

	c := &ColoredMap{
		maxIterations: maxIterations,
		gradient:      gradient,
		lookup:        make([]misc.RGB, maxIterations),
	}
	for i := range c.lookup {
		t := float64(i) / float64(maxIterations-1)
		c.lookup[i] = toRGB(gradient.At(t))
	}
	return c, nil
}

func (c *ColoredMap) Color(iteration int) misc.RGB {
	if iteration >= c.maxIterations || iteration < 0 {
		return misc.Black
	}
	return c.lookup[iteration]
}

func (c *ColoredMap) MaxIterations() int {
	return c.maxIterations
}

func (c *ColoredMap) Gradient() Gradient {
	return c.gradient
}

func (c *ColoredMap) colorMap() {}
