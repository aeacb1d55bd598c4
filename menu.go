package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/chessboard"
	"mandelbrot/mandelbrot"
)

// request is one image to generate, picked on the command line or through the menu
type request struct {
	Pattern    string
	Cells      int
	Mandelbrot mandelbrot.Settings
}

type menu struct {
	logger  bslogger.Logger
	out     io.Writer
	scanner *bufio.Scanner
}

func newMenu(in io.Reader, out io.Writer) menu {
	return menu{
		logger:  bslogger.NewLogger("Menu", bslogger.Normal, nil),
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

func (m *menu) readLine() (string, error) {
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(m.scanner.Text()), nil
}

func (m *menu) prompt(lines ...string) (string, error) {
	for _, line := range lines {
		fmt.Fprintln(m.out, line)
	}
	return m.readLine()
}

// choose asks until a valid request is entered. defaults supplies every Mandelbrot value the menu does not ask for.
func (m *menu) choose(defaults mandelbrot.Settings) (request, error) {
	for {
		choice, err := m.prompt(
			"Choose an option by inputing either: 1 or 2:",
			"1: Generate a chessboard",
			"2: Generate a Mandelbrot set",
		)
		if err != nil {
			return request{}, err
		}

		switch choice {
		case "1":
			cells, err := m.chooseCells()
			if err != nil {
				return request{}, err
			}
			return request{Pattern: patternChessboard, Cells: cells}, nil
		case "2":
			s, err := m.chooseMandelbrot(defaults)
			if err != nil {
				return request{}, err
			}
			return request{Pattern: patternMandelbrot, Mandelbrot: s}, nil
		default:
			fmt.Fprintln(m.out, "Invalid option, please enter '1' or '2'.")
		}
	}
}

func (m *menu) chooseCells() (int, error) {
	for {
		text, err := m.prompt("Enter the number of cells:")
		if err != nil {
			return 0, err
		}
		cells, err := strconv.Atoi(text)
		if err != nil || cells < 1 {
			fmt.Fprintln(m.out, "Invalid number of cells, please enter a positive whole number.")
			continue
		}
		if cells > chessboard.Size {
			fmt.Fprintf(m.out, "Too many cells, the board is only %d pixels wide.\n", chessboard.Size)
			continue
		}
		return cells, nil
	}
}

func (m *menu) chooseMandelbrot(defaults mandelbrot.Settings) (mandelbrot.Settings, error) {
	s := defaults
	for {
		text, err := m.prompt("Enter 'c' for colored or 'gs' for grayscale:")
		if err != nil {
			return s, err
		}
		mode, err := mandelbrot.ParseMode(text)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid color option. Please enter 'c' for colored or 'gs' for grayscale.")
			continue
		}
		s.Mode = mode
		break
	}

	text, err := m.prompt("Enter the space to display in the format xmin;xmax;ymin;ymax (leave empty for the default):")
	if err != nil {
		return s, err
	}
	if text == "" {
		viewport := mandelbrot.DefaultViewport
		s.Viewport = &viewport
		return s, nil
	}
	viewport, err := mandelbrot.ParseViewport(text)
	if err == nil {
		err = viewport.Verify()
	}
	if err != nil {
		m.logger.Warningf("Using the default viewport %s: %s", mandelbrot.DefaultViewport, err)
		viewport = mandelbrot.DefaultViewport
	}
	s.Viewport = &viewport
	return s, nil
}
