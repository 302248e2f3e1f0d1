package worker

import (
	"fmt"
	"sync"
	"time"

	"RandomMandelbrot/mandelbrot"
	"RandomMandelbrot/task"
	"github.com/BrugadaSyndrome/bslogger"
)

type Worker struct {
	id             int
	logger         bslogger.Logger
	mandelbrot     *mandelbrot.Mandelbrot
	tasksCompleted int
}

func NewWorker(id int, m *mandelbrot.Mandelbrot) Worker {
	return Worker{
		id:         id,
		logger:     bslogger.NewLogger(fmt.Sprintf("Worker %d", id), bslogger.Normal, nil),
		mandelbrot: m,
	}
}

func (w *Worker) TasksCompleted() int {
	return w.tasksCompleted
}

// ProcessTasks
// Colors every coordinate of each task pulled from todo and hands the finished task to done. Returns once todo is
// closed and drained.
func (w *Worker) ProcessTasks(viewport mandelbrot.Viewport, scheme mandelbrot.ColorScheme, todo <-chan task.Task, done chan<- task.Task, wg *sync.WaitGroup) {
	defer wg.Done()
	w.logger.Debug("Processing tasks")

	var startTime = time.Now()

	for taskTodo := range todo {
		for {
			coordinate, err := taskTodo.GetNextTask()
			if err != nil {
				break
			}

			pixel := task.Pixel{
				Coordinate: coordinate,
				Color:      w.mandelbrot.GetPixelColor(viewport, scheme, coordinate.Column, coordinate.Row),
			}
			taskTodo.AddResult(pixel)
		}

		done <- taskTodo
		w.tasksCompleted++
	}

	w.logger.Debugf("Processed %d tasks in %s", w.tasksCompleted, time.Since(startTime))
}
