package misc

import (
	"image"
	"image/color"
)

const bytesPerPixel = 3

// PixelGrid is a Width x Height raster of RGB triples stored row by row, 3 bytes per pixel.
// It implements image.Image so a finished grid can be handed straight to an encoder.
type PixelGrid struct {
	Width  int
	Height int
	Stride int
	Pix    []uint8
}

func NewPixelGrid(width int, height int) *PixelGrid {
	return &PixelGrid{
		Width:  width,
		Height: height,
		Stride: width * bytesPerPixel,
		Pix:    make([]uint8, width*height*bytesPerPixel),
	}
}

func (g *PixelGrid) PixOffset(x int, y int) int {
	return y*g.Stride + x*bytesPerPixel
}

func (g *PixelGrid) InBounds(x int, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

func (g *PixelGrid) SetRGB(x int, y int, c RGB) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.PixOffset(x, y)
	g.Pix[i+0] = c.R
	g.Pix[i+1] = c.G
	g.Pix[i+2] = c.B
}

func (g *PixelGrid) RGBAt(x int, y int) RGB {
	if !g.InBounds(x, y) {
		return RGB{}
	}
	i := g.PixOffset(x, y)
	return RGB{R: g.Pix[i+0], G: g.Pix[i+1], B: g.Pix[i+2]}
}

func (g *PixelGrid) ColorModel() color.Model {
	return RGBModel
}

func (g *PixelGrid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

func (g *PixelGrid) At(x int, y int) color.Color {
	return g.RGBAt(x, y)
}

// Len is the number of pixels in the grid
func (g *PixelGrid) Len() int {
	return g.Width * g.Height
}
