package task

import (
	"errors"
	"fmt"
	"mandelbrot/misc"
	"strings"
)

const (
	Row Generation = iota
	Column
	Image
)

// Generation decides how the pixels of an image are grouped into tasks, and so the order they are visited in
type Generation int

func (g Generation) String() string {
	if g < Row || g > Image {
		return fmt.Sprintf("Generation(%d)", int(g))
	}
	return []string{
		"Row", "Column", "Image",
	}[g]
}

func ParseGeneration(s string) (Generation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "":
		return Row, nil
	case "column":
		return Column, nil
	case "image":
		return Image, nil
	}
	return Row, fmt.Errorf("unknown task generation %q", s)
}

var ErrNoMoreTasks = errors.New("no more tasks")

type Task struct {
	CurrentTask int
	ID          int
	Results     []Pixel
	Tasks       []Coordinate
}

func NewTask(id int) Task {
	return Task{
		ID: id,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Result Count: %d ", len(t.Results))
	output += fmt.Sprintf("Task Count: %d}", len(t.Tasks))
	return output
}

func (t *Task) AddTaskForPixel(coordinate Coordinate) {
	t.Tasks = append(t.Tasks, coordinate)
}

func (t *Task) AddTasksForRow(imageRow int, imageWidth int) {
	for c := 0; c < imageWidth; c++ {
		t.AddTaskForPixel(Coordinate{Column: c, Row: imageRow})
	}
}

func (t *Task) AddTasksForColumn(imageHeight int, imageColumn int) {
	for r := 0; r < imageHeight; r++ {
		t.AddTaskForPixel(Coordinate{Column: imageColumn, Row: r})
	}
}

func (t *Task) AddTasksForImage(imageHeight int, imageWidth int) {
	for r := 0; r < imageHeight; r++ {
		for c := 0; c < imageWidth; c++ {
			t.AddTaskForPixel(Coordinate{Column: c, Row: r})
		}
	}
}

// GetNextTask
// Returns the current coordinate to be processed. Make sure to return the result to the AddResult method before
// calling this method again
func (t *Task) GetNextTask() (Coordinate, error) {
	if len(t.Results) >= len(t.Tasks) {
		return Coordinate{}, ErrNoMoreTasks
	}
	return t.Tasks[t.CurrentTask], nil
}

// AddResult
// When returning a result the CurrentTask value is incremented so the next call to the GetNextTask method will return
// the correct coordinate
func (t *Task) AddResult(pixel Pixel) {
	t.Results = append(t.Results, pixel)
	t.CurrentTask++
}

// Done reports whether every coordinate of the task has a result
func (t *Task) Done() bool {
	return len(t.Results) >= len(t.Tasks)
}

// Process runs fn over each remaining coordinate and records its color
func (t *Task) Process(fn func(Coordinate) misc.RGB) {
	for {
		coordinate, err := t.GetNextTask()
		if err != nil {
			return
		}
		t.AddResult(Pixel{
			Color:  fn(coordinate),
			Column: coordinate.Column,
			Row:    coordinate.Row,
		})
	}
}

// Paint copies the results of the task onto grid
func (t *Task) Paint(grid *misc.PixelGrid) {
	for _, p := range t.Results {
		grid.SetRGB(p.Column, p.Row, p.Color)
	}
}

// Split divides a width x height image into tasks according to generation. Every pixel belongs to exactly one task.
func Split(generation Generation, width int, height int) ([]Task, error) {
	var tasks []Task
	switch generation {
	case Row:
		tasks = make([]Task, 0, height)
		for row := 0; row < height; row++ {
			t := NewTask(len(tasks))
			t.AddTasksForRow(row, width)
			tasks = append(tasks, t)
		}
	case Column:
		tasks = make([]Task, 0, width)
		for column := 0; column < width; column++ {
			t := NewTask(len(tasks))
			t.AddTasksForColumn(height, column)
			tasks = append(tasks, t)
		}
	case Image:
		t := NewTask(0)
		t.AddTasksForImage(height, width)
		tasks = []Task{t}
	default:
		return nil, fmt.Errorf("unknown generation type: %d", generation)
	}
	return tasks, nil
}

func (g Generation) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Generation) UnmarshalText(text []byte) error {
	generation, err := ParseGeneration(string(text))
	if err != nil {
		return err
	}
	*g = generation
	return nil
}
