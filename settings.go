package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/chessboard"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
)

const (
	patternChessboard = "chessboard"
	patternMandelbrot = "mandelbrot"
)

type settings struct {
	logger bslogger.Logger

	ChessboardCells    int
	Display            bool
	Format             misc.Format
	MandelbrotSettings mandelbrot.Settings
	Pattern            string
	SavePath           string
}

// NewSettings loads settingsFile when one is given and verifies the result
func NewSettings(settingsFile string) (settings, error) {
	s := settings{
		logger: bslogger.NewLogger("Settings", bslogger.Normal, nil),
	}
	if settingsFile != "" {
		fileBytes, err := misc.ReadFile(settingsFile)
		if err != nil {
			return s, err
		}
		if err = json.Unmarshal(fileBytes, &s); err != nil {
			return s, fmt.Errorf("unable to parse %s - %w", settingsFile, err)
		}
	}
	if err := s.Verify(); err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *settings) String() string {
	output := "\nRun settings\n"
	output += fmt.Sprintf("Chessboard Cells: %d\n", s.ChessboardCells)
	output += fmt.Sprintf("Display: %t\n", s.Display)
	output += fmt.Sprintf("Format: %s\n", s.Format)
	output += fmt.Sprintf("Pattern: %s\n", s.Pattern)
	output += fmt.Sprintf("Save Path: %s", s.SavePath)
	output += s.MandelbrotSettings.String()
	return output
}

func (s *settings) Verify() error {
	// Display defaults to false already
	if s.ChessboardCells < 0 || s.ChessboardCells > chessboard.Size {
		return fmt.Errorf("invalid chessboard cells %d: must be between 1 and %d", s.ChessboardCells, chessboard.Size)
	}
	format, err := misc.ParseFormat(string(s.Format))
	if err != nil {
		return err
	}
	s.Format = format
	s.Pattern = strings.ToLower(strings.TrimSpace(s.Pattern))
	if s.Pattern != "" && s.Pattern != patternChessboard && s.Pattern != patternMandelbrot {
		return fmt.Errorf("unknown pattern %q: expected %s or %s", s.Pattern, patternChessboard, patternMandelbrot)
	}
	if s.SavePath == "" {
		s.SavePath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("unable to find working directory - %w", err)
		}
	}
	return s.MandelbrotSettings.Verify()
}
