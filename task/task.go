package task

import (
	"errors"
	"fmt"
)

const (
	Row Generation = iota
	Column
	Image
)

// Generation decides how the pixels of an image are split into tasks
type Generation int

func (g Generation) String() string {
	return []string{
		"Row", "Column", "Image",
	}[g]
}

type Task struct {
	CurrentTask uint
	ID          uint
	Results     []Pixel
	Tasks       []Coordinate
}

func NewTask(id uint) Task {
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

func (t *Task) AddTasksForRow(imageRow uint, imageWidth uint) {
	t.grow(imageWidth)
	var c uint
	for c = 0; c < imageWidth; c++ {
		t.AddTaskForPixel(Coordinate{Column: c, Row: imageRow})
	}
}

func (t *Task) AddTasksForColumn(imageHeight uint, imageColumn uint) {
	t.grow(imageHeight)
	var r uint
	for r = 0; r < imageHeight; r++ {
		t.AddTaskForPixel(Coordinate{Column: imageColumn, Row: r})
	}
}

func (t *Task) AddTasksForImage(imageHeight uint, imageWidth uint) {
	t.grow(imageHeight * imageWidth)
	var r, c uint
	for r = 0; r < imageHeight; r++ {
		for c = 0; c < imageWidth; c++ {
			t.AddTaskForPixel(Coordinate{Column: c, Row: r})
		}
	}
}

func (t *Task) grow(n uint) {
	if cap(t.Tasks)-len(t.Tasks) >= int(n) {
		return
	}
	tasks := make([]Coordinate, len(t.Tasks), len(t.Tasks)+int(n))
	copy(tasks, t.Tasks)
	t.Tasks = tasks
}

// GetNextTask
// Returns the current task to be processed. Make sure to return the result to the AddResult method before calling
// this method again
func (t *Task) GetNextTask() (Coordinate, error) {
	if len(t.Results) >= len(t.Tasks) {
		return Coordinate{}, errors.New("no more tasks")
	}
	return t.Tasks[t.CurrentTask], nil
}

// AddResult
// When returning a result the CurrentTask value is incremented so the next call to the GetNextTask method will return
// the correct task
func (t *Task) AddResult(pixel Pixel) {
	if t.Results == nil {
		t.Results = make([]Pixel, 0, len(t.Tasks))
	}
	t.Results = append(t.Results, pixel)
	t.CurrentTask++
}
