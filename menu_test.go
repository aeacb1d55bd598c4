package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"mandelbrot/mandelbrot"
)

func chooseFrom(t *testing.T, input string) (request, string, error) {
	t.Helper()
	var out bytes.Buffer
	m := newMenu(strings.NewReader(input), &out)
	r, err := m.choose(mandelbrot.NewSettings())
	return r, out.String(), err
}

func TestMenuChessboard(t *testing.T) {
	r, out, err := chooseFrom(t, "3\n1\nmany\n0\n12\n")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if r.Pattern != patternChessboard || r.Cells != 12 {
		t.Errorf("request = %+v", r)
	}
	if !strings.Contains(out, "Invalid option, please enter '1' or '2'.") {
		t.Error("invalid option was not reported")
	}
	if strings.Count(out, "Enter the number of cells:") != 3 {
		t.Errorf("cells prompt shown %d times, want 3", strings.Count(out, "Enter the number of cells:"))
	}
}

func TestMenuChessboardTooManyCells(t *testing.T) {
	r, out, err := chooseFrom(t, "1\n501\n500\n")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if r.Cells != 500 {
		t.Errorf("Cells = %d, want 500", r.Cells)
	}
	if !strings.Contains(out, "Too many cells") {
		t.Error("oversized board was not reported")
	}
	if strings.Count(out, "Enter the number of cells:") != 2 {
		t.Errorf("cells prompt shown %d times, want 2", strings.Count(out, "Enter the number of cells:"))
	}
}

func TestMenuMandelbrot(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mode     mandelbrot.Mode
		viewport mandelbrot.Viewport
	}{
		{"colored default viewport", "2\nc\n\n", mandelbrot.Colored, mandelbrot.DefaultViewport},
		{"grayscale custom viewport", "2\ngs\n-1;1;-0.5;0.5\n", mandelbrot.Grayscale, mandelbrot.Viewport{Xmin: -1, Xmax: 1, Ymin: -0.5, Ymax: 0.5}},
		{"bad color retried", "2\nrainbow\ngs\n\n", mandelbrot.Grayscale, mandelbrot.DefaultViewport},
		{"malformed viewport falls back", "2\ngs\n1;2;3\n", mandelbrot.Grayscale, mandelbrot.DefaultViewport},
		{"inverted viewport falls back", "2\nc\n2;-2;-1;1\n", mandelbrot.Colored, mandelbrot.DefaultViewport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, err := chooseFrom(t, tt.input)
			if err != nil {
				t.Fatalf("choose: %v", err)
			}
			if r.Pattern != patternMandelbrot {
				t.Fatalf("pattern = %s", r.Pattern)
			}
			if r.Mandelbrot.Mode != tt.mode || *r.Mandelbrot.Viewport != tt.viewport {
				t.Errorf("got %s %s, want %s %s", r.Mandelbrot.Mode, r.Mandelbrot.Viewport, tt.mode, tt.viewport)
			}
			if r.Mandelbrot.MaxIterations != mandelbrot.DefaultMaxIterations {
				t.Errorf("MaxIterations = %d", r.Mandelbrot.MaxIterations)
			}
		})
	}
}

func TestMenuEndOfInput(t *testing.T) {
	for _, input := range []string{"", "2\n", "2\nc\n", "1\n"} {
		if _, _, err := chooseFrom(t, input); !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("input %q: err = %v, want %v", input, err, io.ErrUnexpectedEOF)
		}
	}
}
