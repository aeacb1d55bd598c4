package chessboard

import (
	"fmt"

	"mandelbrot/misc"
)

// Size is the side length in pixels of every board
const Size = 500

var (
	White = misc.RGB{R: 255, G: 255, B: 255}
	Black = misc.Black
)

// DrawSquare draws a Size x Size board with cellCount cells per side, starting with a white cell in the top left.
// When Size is not a multiple of cellCount the leftover strip on the right and bottom stays black.
func DrawSquare(cellCount int) (*misc.PixelGrid, error) {
	if cellCount < 1 || cellCount > Size {
		return nil, fmt.Errorf("invalid cell count %d: must be between 1 and %d", cellCount, Size)
	}

	squareSize := Size / cellCount
	grid := misc.NewPixelGrid(Size, Size)
	for i := 0; i < cellCount; i++ {
		for j := 0; j < cellCount; j++ {
			color := CellColor(i, j)
			for x := 0; x < squareSize; x++ {
				for y := 0; y < squareSize; y++ {
					grid.SetRGB(i*squareSize+x, j*squareSize+y, color)
				}
			}
		}
	}
	return grid, nil
}

// CellColor is the color of the cell in column i and row j
func CellColor(i int, j int) misc.RGB {
	if (i+j)%2 == 0 {
		return White
	}
	return Black
}

func FileName(cellCount int, format misc.Format) string {
	return fmt.Sprintf("chessboard_%dx%d.%s", cellCount, cellCount, format)
}
