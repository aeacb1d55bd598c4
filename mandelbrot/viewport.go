package mandelbrot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Viewport is the rectangle of the complex plane that is mapped onto the pixel grid
type Viewport struct {
	Xmin float32
	Xmax float32
	Ymin float32
	Ymax float32
}

var DefaultViewport = Viewport{Xmin: -2.0, Xmax: 2.0, Ymin: -1.5, Ymax: 1.5}

const viewportFieldSeparator = ";"

var viewportFieldNames = [4]string{"xmin", "xmax", "ymin", "ymax"}

// ParseViewport reads a viewport written as xmin;xmax;ymin;ymax. Malformed input is an error, defaults are never
// substituted here.
func ParseViewport(input string) (Viewport, error) {
	parts := strings.Split(strings.TrimSpace(input), viewportFieldSeparator)
	if len(parts) != len(viewportFieldNames) {
		return Viewport{}, configErrorf("viewport", input, "expected %d fields in the format xmin;xmax;ymin;ymax, got %d", len(viewportFieldNames), len(parts))
	}

	var values [4]float32
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return Viewport{}, configErrorf(viewportFieldNames[i], part, "not a number")
		}
		values[i] = float32(v)
	}

	return Viewport{Xmin: values[0], Xmax: values[1], Ymin: values[2], Ymax: values[3]}, nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("%g;%g;%g;%g", v.Xmin, v.Xmax, v.Ymin, v.Ymax)
}

// Verify rejects bounds that are not finite or not strictly increasing on either axis
func (v Viewport) Verify() error {
	for i, bound := range [4]float32{v.Xmin, v.Xmax, v.Ymin, v.Ymax} {
		f := float64(bound)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return configErrorf(viewportFieldNames[i], bound, "must be finite")
		}
	}
	if v.Xmin >= v.Xmax {
		return configErrorf("viewport", v, "xmin must be less than xmax")
	}
	if v.Ymin >= v.Ymax {
		return configErrorf("viewport", v, "ymin must be less than ymax")
	}
	return nil
}

// Scale is the size of one pixel on the complex plane along each axis
func (v Viewport) Scale(width int, height int) (float32, float32) {
	scaleX := (v.Xmax - v.Xmin) / float32(width)
	scaleY := (v.Ymax - v.Ymin) / float32(height)
	return scaleX, scaleY
}

// PixelToComplex maps the top left corner of pixel (px, py) onto the complex plane
func (v Viewport) PixelToComplex(px int, py int, scaleX float32, scaleY float32) (float32, float32) {
	// The explicit conversions keep the compiler from fusing the multiply and add.
	x0 := float32(float32(px)*scaleX) + v.Xmin
	y0 := float32(float32(py)*scaleY) + v.Ymin
	return x0, y0
}
