package display

import (
	"fmt"
	"image"
	"math"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/gdamore/tcell/v2"

	"mandelbrot/misc"
)

// upperHalfBlock shows the top pixel of a cell in the foreground color and the bottom pixel in the background color
const upperHalfBlock = '▀'

// Canvas is the part of tcell.Screen the viewer draws on
type Canvas interface {
	SetContent(x int, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (int, int)
}

// Cell is one terminal cell covering two vertically stacked pixels
type Cell struct {
	Top       misc.RGB
	Bottom    misc.RGB
	HasBottom bool
}

type Viewer struct {
	logger bslogger.Logger
	screen tcell.Screen
	title  string
}

func NewViewer(screen tcell.Screen, title string) Viewer {
	return Viewer{
		logger: bslogger.NewLogger("Display", bslogger.Normal, nil),
		screen: screen,
		title:  title,
	}
}

// Show opens the terminal, draws img and blocks until a key is pressed
func Show(img image.Image, title string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to open terminal - %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("unable to initialize terminal - %w", err)
	}
	defer screen.Fini()

	viewer := NewViewer(screen, title)
	return viewer.Run(img)
}

func (v *Viewer) Run(img image.Image) error {
	v.redraw(img)
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			// Screen was finalized
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.redraw(img)
		case *tcell.EventKey:
			v.logger.Debugf("Closing %s on key %s", v.title, ev.Name())
			return nil
		}
	}
}

func (v *Viewer) redraw(img image.Image) {
	v.screen.Clear()
	cols, rows := Draw(v.screen, img)
	v.logger.Debugf("Drew %s as %dx%d cells", v.title, cols, rows)
	v.screen.Show()
}

// Draw paints img onto canvas scaled to fit and returns the number of columns and rows used
func Draw(canvas Canvas, img image.Image) (int, int) {
	cols, rows := canvas.Size()
	cells := Layout(img, cols, rows)
	for y, row := range cells {
		for x, cell := range row {
			canvas.SetContent(x, y, upperHalfBlock, nil, CellStyle(cell))
		}
	}
	if len(cells) == 0 {
		return 0, 0
	}
	return len(cells[0]), len(cells)
}

func CellStyle(cell Cell) tcell.Style {
	style := tcell.StyleDefault.Foreground(toColor(cell.Top))
	if cell.HasBottom {
		style = style.Background(toColor(cell.Bottom))
	}
	return style
}

func toColor(c misc.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Layout downsamples img, keeping its aspect ratio, so it fits in cols x rows cells of two pixels each
func Layout(img image.Image, cols int, rows int) [][]Cell {
	bounds := img.Bounds()
	if cols <= 0 || rows <= 0 || bounds.Empty() {
		return nil
	}

	// Pixels of the source image per terminal pixel, never enlarging
	scale := math.Max(float64(bounds.Dx())/float64(cols), float64(bounds.Dy())/float64(rows*2))
	scale = math.Max(scale, 1)
	width := int(float64(bounds.Dx()) / scale)
	height := int(float64(bounds.Dy()) / scale)
	width = max(width, 1)
	height = max(height, 1)

	sample := func(x int, y int) misc.RGB {
		sx := bounds.Min.X + int(float64(x)*scale)
		sy := bounds.Min.Y + int(float64(y)*scale)
		return misc.RGBModel.Convert(img.At(sx, sy)).(misc.RGB)
	}

	cells := make([][]Cell, (height+1)/2)
	for cy := range cells {
		cells[cy] = make([]Cell, width)
		for cx := range cells[cy] {
			cell := Cell{Top: sample(cx, cy*2)}
			if cy*2+1 < height {
				cell.Bottom = sample(cx, cy*2+1)
				cell.HasBottom = true
			}
			cells[cy][cx] = cell
		}
	}
	return cells
}
