package coordinator

import (
	gimage "image"
	"sync"

	"RandomMandelbrot/mandelbrot"
	"RandomMandelbrot/task"
	"RandomMandelbrot/worker"
)

// Render
// Splits the image into tasks, lets the workers color them and records every returned pixel. Only this goroutine
// writes to the image and each pixel belongs to exactly one task.
func (c *Coordinator) Render(viewport mandelbrot.Viewport, scheme mandelbrot.ColorScheme) *gimage.RGBA {
	settings := c.mandelbrot.Settings()
	image := gimage.NewRGBA(gimage.Rect(0, 0, int(settings.Width), int(settings.Height)))

	tasksTodo := make(chan task.Task, c.settings.WorkerCount)
	tasksDone := make(chan task.Task, c.settings.WorkerCount)
	workerWait := &sync.WaitGroup{}

	go c.generateTasks(tasksTodo)

	for i := 0; i < c.settings.WorkerCount; i++ {
		w := worker.NewWorker(i, &c.mandelbrot)
		workerWait.Add(1)
		go w.ProcessTasks(viewport, scheme, tasksTodo, tasksDone, workerWait)
	}

	go func() {
		workerWait.Wait()
		close(tasksDone)
	}()

	for taskDone := range tasksDone {
		for _, pixel := range taskDone.Results {
			image.SetRGBA(int(pixel.Column), int(pixel.Row), pixel.Color)
		}
	}

	return image
}

func (c *Coordinator) generateTasks(tasksTodo chan<- task.Task) {
	settings := c.mandelbrot.Settings()
	var taskGeneratedCount uint

	switch c.settings.TaskGeneration {
	case task.Column:
		var column uint
		for column = 0; column < settings.Width; column++ {
			taskTodo := task.NewTask(taskGeneratedCount)
			taskTodo.AddTasksForColumn(settings.Height, column)
			tasksTodo <- taskTodo
			taskGeneratedCount++
		}
	case task.Image:
		taskTodo := task.NewTask(taskGeneratedCount)
		taskTodo.AddTasksForImage(settings.Height, settings.Width)
		tasksTodo <- taskTodo
		taskGeneratedCount++
	default:
		var row uint
		for row = 0; row < settings.Height; row++ {
			taskTodo := task.NewTask(taskGeneratedCount)
			taskTodo.AddTasksForRow(row, settings.Width)
			tasksTodo <- taskTodo
			taskGeneratedCount++
		}
	}

	close(tasksTodo)
}
