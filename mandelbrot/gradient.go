package mandelbrot

import (
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"mandelbrot/misc"
)

// Gradient is a continuous color ramp sampled over [0, 1]
type Gradient interface {
	At(t float64) colorful.Color
	Name() string
}

const DefaultGradientName = "turbo"

// turbo is the polynomial approximation of Google's Turbo colormap used by d3 and colorgrad
type turbo struct{}

func (turbo) Name() string { return "turbo" }

func (turbo) At(t float64) colorful.Color {
	t = clamp01(t)
	// Each product is converted so it is rounded before the add and never fused into an FMA
	r := channel255(34.61 + float64(t*(1172.33-float64(t*(10793.56-float64(t*(33300.12-float64(t*(38394.49-float64(t*14825.05))))))))))
	g := channel255(23.31 + float64(t*(557.33+float64(t*(1225.33-float64(t*(3574.96-float64(t*(1073.77+float64(t*707.56))))))))))
	b := channel255(27.2 + float64(t*(3211.1-float64(t*(15327.97-float64(t*(27814-float64(t*(22569.18-float64(t*6838.66))))))))))
	return colorful.Color{R: r / 255, G: g / 255, B: b / 255}
}

func channel255(v float64) float64 {
	return math.Max(0, math.Min(255, math.Round(v)))
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// stops is a piecewise linear ramp through evenly spaced colors, blended in RGB
type stops struct {
	name   string
	colors []colorful.Color
}

func newStops(name string, hexColors ...string) stops {
	s := stops{name: name, colors: make([]colorful.Color, len(hexColors))}
	for i, hex := range hexColors {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(err)
		}
		s.colors[i] = c
	}
	return s
}

func (s stops) Name() string { return s.name }

func (s stops) At(t float64) colorful.Color {
	t = clamp01(t)
	segments := len(s.colors) - 1
	if segments < 1 {
		return s.colors[0]
	}
	position := misc.LerpFloat64(0, float64(segments), t)
	i := int(position)
	if i >= segments {
		return s.colors[segments]
	}
	return s.colors[i].BlendRgb(s.colors[i+1], position-float64(i))
}

var gradients = map[string]Gradient{
	"turbo": turbo{},
	"viridis": newStops("viridis",
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"),
	"magma": newStops("magma",
		"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a",
		"#e55064", "#fb8761", "#fec287", "#fcfdbf"),
}

// GradientByName looks up one of the built in gradients; an empty name selects the default
func GradientByName(name string) (Gradient, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultGradientName
	}
	g, ok := gradients[key]
	if !ok {
		return nil, configErrorf("gradient", name, "expected one of %s", strings.Join(GradientNames(), ", "))
	}
	return g, nil
}

func GradientNames() []string {
	names := make([]string, 0, len(gradients))
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// toRGB drops any alpha and rounds each channel to 8 bits
func toRGB(c colorful.Color) misc.RGB {
	r, g, b := c.Clamped().RGB255()
	return misc.RGB{R: r, G: g, B: b}
}
