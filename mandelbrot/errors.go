package mandelbrot

import (
	"errors"
	"fmt"
)

// ConfigError is returned for render requests that are rejected before any rendering work begins
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func configErrorf(field string, value interface{}, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Field:  field,
		Value:  fmt.Sprint(value),
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsConfigError reports whether err is, or wraps, a *ConfigError
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
