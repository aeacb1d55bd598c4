package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/chessboard"
	"mandelbrot/display"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
)

const defaultChessboardCells = 8

func main() {
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	args, err := parseArguments(os.Args[1:], os.Stderr)
	misc.CheckError(err, logger, misc.Fatal)

	s, err := NewSettings(args.settingsFile)
	misc.CheckError(err, logger, misc.Fatal)
	misc.CheckError(args.apply(&s), logger, misc.Fatal)

	a := newApp(s, os.Stdin, os.Stdout)
	misc.CheckError(a.run(), logger, misc.Fatal)
}

type app struct {
	in       io.Reader
	logger   bslogger.Logger
	out      io.Writer
	settings settings
	show     func(img image.Image, title string) error
}

func newApp(s settings, in io.Reader, out io.Writer) app {
	return app{
		in:       in,
		logger:   bslogger.NewLogger("Renderer", bslogger.Normal, nil),
		out:      out,
		settings: s,
		show:     display.Show,
	}
}

// run generates, saves and optionally displays one image
func (a *app) run() error {
	r, err := a.request()
	if err != nil {
		return err
	}

	img, fileName, err := a.generate(r)
	if err != nil {
		return err
	}

	path := filepath.Join(a.settings.SavePath, fileName)
	if err = misc.SaveImage(path, img); err != nil {
		return err
	}
	a.logger.Infof("Saved image to %s", path)
	fmt.Fprintf(a.out, "%s saved as %s\n", patternTitle(r.Pattern), path)

	if a.settings.Display {
		misc.CheckError(a.show(img, fileName), a.logger, misc.Warning)
	}
	return nil
}

// request comes from the settings when a pattern was picked up front, and from the menu otherwise
func (a *app) request() (request, error) {
	switch a.settings.Pattern {
	case patternChessboard:
		return request{Pattern: patternChessboard, Cells: a.settings.ChessboardCells}, nil
	case patternMandelbrot:
		return request{Pattern: patternMandelbrot, Mandelbrot: a.settings.MandelbrotSettings}, nil
	}
	m := newMenu(a.in, a.out)
	return m.choose(a.settings.MandelbrotSettings)
}

func (a *app) generate(r request) (image.Image, string, error) {
	switch r.Pattern {
	case patternChessboard:
		cells := r.Cells
		if cells == 0 {
			cells = defaultChessboardCells
		}
		grid, err := chessboard.DrawSquare(cells)
		if err != nil {
			return nil, "", err
		}
		return grid, chessboard.FileName(cells, a.settings.Format), nil
	case patternMandelbrot:
		a.logger.Infof("Rendering %s mandelbrot %dx%d of %s with %d max iterations", r.Mandelbrot.Mode, r.Mandelbrot.Width, r.Mandelbrot.Height, r.Mandelbrot.Viewport, r.Mandelbrot.MaxIterations)
		grid, err := mandelbrot.Render(r.Mandelbrot)
		if err != nil {
			return nil, "", err
		}
		return grid, mandelbrot.FileName(r.Mandelbrot.Mode, a.settings.Format), nil
	}
	return nil, "", fmt.Errorf("unknown pattern %q", r.Pattern)
}

func patternTitle(pattern string) string {
	if pattern == patternChessboard {
		return "Chessboard"
	}
	return "Mandelbrot set"
}
