package misc

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func LerpFloat64(v1 float64, v2 float64, fraction float64) float64 {
	return v1 + (v2-v1)*fraction
}

// Format is an output image encoding
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("unknown image format %q", s)
	}
}

// FormatForFile picks the encoding from the extension of fileName
func FormatForFile(fileName string) (Format, error) {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return "", fmt.Errorf("file %s has no extension", fileName)
	}
	return ParseFormat(ext)
}

func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
}

// SaveImage writes img to fileName using the encoding implied by its extension
func SaveImage(fileName string, img image.Image) error {
	format, err := FormatForFile(fileName)
	if err != nil {
		return err
	}
	file, err := CreateFile(fileName)
	if err != nil {
		return err
	}
	if err = Encode(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("unable to save image %s - %w", fileName, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("unable to close file %s - %w", fileName, err)
	}
	return nil
}

// RGB is an opaque 24 bit color
type RGB struct {
	R, G, B uint8
}

var Black = RGB{}

func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func (c RGB) String() string {
	return fmt.Sprintf("{RGB %d %d %d}", c.R, c.G, c.B)
}

var RGBModel = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
