package mandelbrot

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/misc"
	"mandelbrot/task"
)

const (
	DefaultWidth         = 800
	DefaultHeight        = 600
	DefaultMaxIterations = 100
)

type Settings struct {
	logger bslogger.Logger

	Gradient       string
	Height         int
	MaxIterations  int
	Mode           Mode
	TaskGeneration task.Generation
	Viewport       *Viewport
	Width          int
}

func NewSettings() Settings {
	s := Settings{}
	// The zero value only holds defaults so it always verifies.
	_ = s.Verify()
	return s
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Gradient: %s\n", s.Gradient)
	output += fmt.Sprintf("Height: %d\n", s.Height)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Mode: %s\n", s.Mode)
	output += fmt.Sprintf("Task Generation: %s\n", s.TaskGeneration)
	output += fmt.Sprintf("Viewport: %s\n", s.Viewport)
	output += fmt.Sprintf("Width: %d\n", s.Width)
	return output
}

// Verify fills unset values with defaults and rejects values that cannot be rendered
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Gradient == "" {
		s.Gradient = DefaultGradientName
	}
	if _, err := GradientByName(s.Gradient); err != nil {
		return err
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Height < 0 {
		return configErrorf("height", s.Height, "must be greater than 0")
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = DefaultMaxIterations
	}
	if s.MaxIterations < 1 {
		return configErrorf("maxIterations", s.MaxIterations, "must be at least 1")
	}
	if s.Mode != Grayscale && s.Mode != Colored {
		return configErrorf("mode", s.Mode, "unknown color mode")
	}
	if s.Mode == Colored && s.MaxIterations <= 1 {
		return configErrorf("maxIterations", s.MaxIterations, "must be greater than 1 for the colored mode")
	}
	if s.TaskGeneration < task.Row || s.TaskGeneration > task.Image {
		return configErrorf("taskGeneration", s.TaskGeneration, "unknown task generation")
	}
	// Only a missing viewport gets the default, an explicit one is always verified
	if s.Viewport == nil {
		viewport := DefaultViewport
		s.Viewport = &viewport
	}
	if err := s.Viewport.Verify(); err != nil {
		return err
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Width < 0 {
		return configErrorf("width", s.Width, "must be greater than 0")
	}

	s.logger.Debug(s.String())
	return nil
}

// FileName is the conventional output name, <kind>_mandelbrot.<ext>
func FileName(mode Mode, format misc.Format) string {
	return fmt.Sprintf("%s_mandelbrot.%s", mode, format)
}
