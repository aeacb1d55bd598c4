package task

import "fmt"

// Coordinate is a pixel position on the output grid
type Coordinate struct {
	Column int
	Row    int
}

func (c *Coordinate) String() string {
	return fmt.Sprintf("{Coordinate Column: %d Row: %d}", c.Column, c.Row)
}
