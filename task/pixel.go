package task

import "mandelbrot/misc"

type Pixel struct {
	Color  misc.RGB
	Column int
	Row    int
}
