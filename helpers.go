package main

import (
	"flag"
	"fmt"
	"io"

	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/task"
)

type arguments struct {
	settingsFile string

	cells         int
	display       bool
	format        string
	gradient      string
	height        int
	maxIterations int
	mode          string
	pattern       string
	savePath      string
	traversal     string
	viewport      string
	width         int

	// names of the flags given on the command line
	set map[string]bool
}

func parseArguments(args []string, output io.Writer) (arguments, error) {
	a := arguments{set: make(map[string]bool)}

	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&a.settingsFile, "settings", "", "Json file with run settings")

	fs.IntVar(&a.cells, "cells", 0, "Number of cells per side of the chessboard")
	fs.BoolVar(&a.display, "display", false, "Show the image in the terminal once it is saved")
	fs.StringVar(&a.format, "format", "", "Output image format: png, jpg, bmp or tiff")
	fs.StringVar(&a.gradient, "gradient", "", fmt.Sprintf("Gradient for the colored mode: %v", mandelbrot.GradientNames()))
	fs.IntVar(&a.height, "height", mandelbrot.DefaultHeight, "Height of the mandelbrot image")
	fs.IntVar(&a.maxIterations, "maxIterations", mandelbrot.DefaultMaxIterations, "Iterations to run to verify each point")
	fs.StringVar(&a.mode, "mode", "", "Mandelbrot color mode: 'c' for colored or 'gs' for grayscale")
	fs.StringVar(&a.pattern, "pattern", "", "Pattern to generate: chessboard or mandelbrot. Prompts when empty")
	fs.StringVar(&a.savePath, "savePath", "", "Folder to save images to")
	fs.StringVar(&a.traversal, "traversal", "", "Order pixels are visited in: row, column or image")
	fs.StringVar(&a.viewport, "viewport", "", "Space to display in the format xmin;xmax;ymin;ymax")
	fs.IntVar(&a.width, "width", mandelbrot.DefaultWidth, "Width of the mandelbrot image")

	if err := fs.Parse(args); err != nil {
		return a, err
	}
	if fs.NArg() > 0 {
		return a, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) {
		a.set[f.Name] = true
	})
	return a, nil
}

// apply overrides s with every flag given on the command line, then verifies the result
func (a *arguments) apply(s *settings) error {
	var err error
	m := &s.MandelbrotSettings

	if a.set["cells"] {
		s.ChessboardCells = a.cells
	}
	if a.set["display"] {
		s.Display = a.display
	}
	if a.set["format"] {
		if s.Format, err = misc.ParseFormat(a.format); err != nil {
			return err
		}
	}
	if a.set["gradient"] {
		m.Gradient = a.gradient
	}
	if a.set["height"] {
		if a.height <= 0 {
			return &mandelbrot.ConfigError{Field: "height", Value: fmt.Sprint(a.height), Reason: "must be greater than 0"}
		}
		m.Height = a.height
	}
	if a.set["maxIterations"] {
		if a.maxIterations <= 0 {
			return &mandelbrot.ConfigError{Field: "maxIterations", Value: fmt.Sprint(a.maxIterations), Reason: "must be greater than 0"}
		}
		m.MaxIterations = a.maxIterations
	}
	if a.set["mode"] {
		if m.Mode, err = mandelbrot.ParseMode(a.mode); err != nil {
			return err
		}
	}
	if a.set["pattern"] {
		s.Pattern = a.pattern
	}
	if a.set["savePath"] {
		s.SavePath = a.savePath
	}
	if a.set["traversal"] {
		if m.TaskGeneration, err = task.ParseGeneration(a.traversal); err != nil {
			return err
		}
	}
	if a.set["viewport"] {
		viewport, err := mandelbrot.ParseViewport(a.viewport)
		if err != nil {
			return err
		}
		m.Viewport = &viewport
	}
	if a.set["width"] {
		if a.width <= 0 {
			return &mandelbrot.ConfigError{Field: "width", Value: fmt.Sprint(a.width), Reason: "must be greater than 0"}
		}
		m.Width = a.width
	}
	return s.Verify()
}
