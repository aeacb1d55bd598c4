package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
)

func testApp(t *testing.T, s settings, input string) (*app, *bytes.Buffer, *[]string) {
	t.Helper()
	if s.SavePath == "" {
		s.SavePath = t.TempDir()
	}
	if err := s.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	var out bytes.Buffer
	shown := &[]string{}
	a := newApp(s, strings.NewReader(input), &out)
	a.show = func(img image.Image, title string) error {
		*shown = append(*shown, title)
		return nil
	}
	return &a, &out, shown
}

func TestRunChessboardFromSettings(t *testing.T) {
	a, out, shown := testApp(t, settings{Pattern: patternChessboard, ChessboardCells: 4, Display: true}, "")
	if err := a.run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	path := filepath.Join(a.settings.SavePath, "chessboard_4x4.png")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("image not saved: %v", err)
	}
	if !strings.Contains(out.String(), "Chessboard saved as "+path) {
		t.Errorf("output = %q", out.String())
	}
	if len(*shown) != 1 || (*shown)[0] != "chessboard_4x4.png" {
		t.Errorf("displayed %v", *shown)
	}
}

func TestRunMandelbrotFromMenu(t *testing.T) {
	s := settings{
		Format:             misc.BMP,
		MandelbrotSettings: mandelbrot.Settings{Width: 40, Height: 30},
	}
	a, out, shown := testApp(t, s, "2\ngs\n\n")
	if err := a.run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	path := filepath.Join(a.settings.SavePath, "grayscale_mandelbrot.bmp")
	contents, err := misc.ReadFile(path)
	if err != nil {
		t.Fatalf("image not saved: %v", err)
	}
	if !bytes.HasPrefix(contents, []byte("BM")) {
		t.Error("saved image is not a bmp")
	}
	if !strings.Contains(out.String(), "Mandelbrot set saved as "+path) {
		t.Errorf("output = %q", out.String())
	}
	if len(*shown) != 0 {
		t.Errorf("displayed %v without Display set", *shown)
	}
}

func TestRunRejectsBadRequest(t *testing.T) {
	a, _, _ := testApp(t, settings{Pattern: patternMandelbrot}, "")
	a.settings.MandelbrotSettings.Width = -5
	if err := a.run(); !mandelbrot.IsConfigError(err) {
		t.Errorf("run: err = %v, want a ConfigError", err)
	}
	entries, _ := os.ReadDir(a.settings.SavePath)
	if len(entries) != 0 {
		t.Errorf("%d files written for a rejected request", len(entries))
	}
}

func TestNewSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.json")
	json := `{
		"Pattern": "Mandelbrot",
		"Format": "jpeg",
		"SavePath": "` + filepath.ToSlash(dir) + `",
		"MandelbrotSettings": {"Mode": "colored", "Viewport": "-2;1;-1;1", "MaxIterations": 64}
	}`
	if _, err := misc.WriteFile(file, []byte(json)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := NewSettings(file)
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}
	if s.Pattern != patternMandelbrot || s.Format != misc.JPEG {
		t.Errorf("Pattern %s, Format %s", s.Pattern, s.Format)
	}
	m := s.MandelbrotSettings
	if m.Mode != mandelbrot.Colored || m.MaxIterations != 64 || m.Width != mandelbrot.DefaultWidth {
		t.Errorf("Mode %s, MaxIterations %d, Width %d", m.Mode, m.MaxIterations, m.Width)
	}
	if *m.Viewport != (mandelbrot.Viewport{Xmin: -2, Xmax: 1, Ymin: -1, Ymax: 1}) {
		t.Errorf("Viewport = %s", m.Viewport)
	}

	if _, err := NewSettings(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing settings file was accepted")
	}
	if _, err := misc.WriteFile(file, []byte(`{"MandelbrotSettings": {"Viewport": "a;2;3;4"}}`)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := NewSettings(file); !mandelbrot.IsConfigError(err) {
		t.Errorf("bad viewport in file: err = %v, want a ConfigError", err)
	}
}
