package mandelbrot

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// UnmarshalText lets a viewport be written as "xmin;xmax;ymin;ymax" in settings files
func (v *Viewport) UnmarshalText(text []byte) error {
	viewport, err := ParseViewport(string(text))
	if err != nil {
		return err
	}
	*v = viewport
	return nil
}

func (v Viewport) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
