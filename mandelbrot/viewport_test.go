package mandelbrot

import (
	"errors"
	"testing"
)

func TestParseViewport(t *testing.T) {
	tests := []struct {
		in   string
		want Viewport
	}{
		{"-2;2;-1.5;1.5", DefaultViewport},
		{" -0.8 ; -0.7 ; 0.05 ; 0.15 \n", Viewport{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}},
		{"1e-1;2;3;4", Viewport{Xmin: 0.1, Xmax: 2, Ymin: 3, Ymax: 4}},
	}
	for _, tt := range tests {
		got, err := ParseViewport(tt.in)
		if err != nil {
			t.Errorf("ParseViewport(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseViewport(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseViewportRejectsMalformedText(t *testing.T) {
	tests := []struct {
		in    string
		field string
	}{
		{"1;2;3", "viewport"},
		{"1;2;3;4;5", "viewport"},
		{"", "viewport"},
		{"a;2;3;4", "xmin"},
		{"1;2;;4", "ymin"},
		{"1;2;3;four", "ymax"},
	}
	for _, tt := range tests {
		_, err := ParseViewport(tt.in)
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("ParseViewport(%q): err = %v, want a ConfigError", tt.in, err)
			continue
		}
		if ce.Field != tt.field {
			t.Errorf("ParseViewport(%q) blamed %s, want %s", tt.in, ce.Field, tt.field)
		}
	}
}

func TestViewportVerify(t *testing.T) {
	nan := float32(0)
	nan = nan / nan
	tests := []struct {
		name    string
		v       Viewport
		wantErr bool
	}{
		{"default", DefaultViewport, false},
		{"tiny", Viewport{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}, false},
		{"inverted x", Viewport{Xmin: 2, Xmax: -2, Ymin: -1, Ymax: 1}, true},
		{"inverted y", Viewport{Xmin: -2, Xmax: 2, Ymin: 1, Ymax: -1}, true},
		{"equal x", Viewport{Xmin: 1, Xmax: 1, Ymin: -1, Ymax: 1}, true},
		{"not a number", Viewport{Xmin: nan, Xmax: 1, Ymin: -1, Ymax: 1}, true},
	}
	for _, tt := range tests {
		err := tt.v.Verify()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Verify() = %v, wantErr %t", tt.name, err, tt.wantErr)
		}
		if err != nil && !IsConfigError(err) {
			t.Errorf("%s: Verify() = %T, want a ConfigError", tt.name, err)
		}
	}
}

func TestViewportTextRoundTrip(t *testing.T) {
	v := Viewport{Xmin: -1.25, Xmax: 0.5, Ymin: -0.75, Ymax: 0.75}
	text, err := v.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var got Viewport
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", text, err)
	}
	if got != v {
		t.Errorf("round trip through %q gave %+v, want %+v", text, got, v)
	}
}
