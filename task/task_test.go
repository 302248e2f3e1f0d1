package task

import (
	"image/color"
	"testing"
)

func TestAddTasks(t *testing.T) {
	tests := []struct {
		name string
		fill func(*Task)
		want int
	}{
		{"row", func(task *Task) { task.AddTasksForRow(3, 7) }, 7},
		{"column", func(task *Task) { task.AddTasksForColumn(5, 2) }, 5},
		{"image", func(task *Task) { task.AddTasksForImage(4, 6) }, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(1)
			tt.fill(&task)
			if len(task.Tasks) != tt.want {
				t.Fatalf("%s has %d coordinates, want %d", task.String(), len(task.Tasks), tt.want)
			}

			seen := make(map[Coordinate]bool)
			for _, coordinate := range task.Tasks {
				if seen[coordinate] {
					t.Fatalf("coordinate %s added twice", coordinate.String())
				}
				seen[coordinate] = true
			}
		})
	}
}

func TestRowAndColumnCoordinates(t *testing.T) {
	row := NewTask(0)
	row.AddTasksForRow(3, 4)
	for i, coordinate := range row.Tasks {
		if coordinate.Row != 3 || coordinate.Column != uint(i) {
			t.Errorf("row task %d = %s, want {Column: %d Row: 3}", i, coordinate.String(), i)
		}
	}

	column := NewTask(1)
	column.AddTasksForColumn(4, 2)
	for i, coordinate := range column.Tasks {
		if coordinate.Column != 2 || coordinate.Row != uint(i) {
			t.Errorf("column task %d = %s, want {Column: 2 Row: %d}", i, coordinate.String(), i)
		}
	}
}

func TestGetNextTaskAndAddResult(t *testing.T) {
	task := NewTask(7)
	task.AddTasksForRow(0, 3)

	for i := 0; i < 3; i++ {
		coordinate, err := task.GetNextTask()
		if err != nil {
			t.Fatalf("GetNextTask() returned %s after %d results", err, i)
		}
		if coordinate.Column != uint(i) {
			t.Fatalf("GetNextTask() = %s, want column %d", coordinate.String(), i)
		}
		task.AddResult(Pixel{Coordinate: coordinate, Color: color.RGBA{R: uint8(i), A: 255}})
	}

	if _, err := task.GetNextTask(); err == nil {
		t.Fatal("GetNextTask() returned no error once every coordinate had a result")
	}
	if len(task.Results) != 3 {
		t.Fatalf("%s has %d results, want 3", task.String(), len(task.Results))
	}
	for i, pixel := range task.Results {
		if pixel.Column != uint(i) || pixel.Color.R != uint8(i) {
			t.Errorf("result %d = %s", i, pixel.String())
		}
	}
}

func TestGenerationString(t *testing.T) {
	want := map[Generation]string{Row: "Row", Column: "Column", Image: "Image"}
	for generation, name := range want {
		if got := generation.String(); got != name {
			t.Errorf("Generation(%d).String() = %q, want %q", int(generation), got, name)
		}
	}
}
