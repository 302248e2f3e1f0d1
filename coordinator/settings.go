package coordinator

import (
	"fmt"
	"runtime"
	"time"

	"RandomMandelbrot/mandelbrot"
	"RandomMandelbrot/misc"
	"RandomMandelbrot/task"
	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultMaxAttempts uint = 400
	DefaultSavePath         = "output"
)

type Settings struct {
	logger bslogger.Logger

	MandelbrotSettings mandelbrot.Settings
	MaxAttempts        uint
	SavePath           string
	Seed               int64
	TaskGeneration     task.Generation
	WorkerCount        int
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("MaxAttempts: %d\n", s.MaxAttempts)
	output += fmt.Sprintf("SavePath: %s\n", s.SavePath)
	output += fmt.Sprintf("Seed: %d\n", s.Seed)
	output += fmt.Sprintf("TaskGeneration: %s\n", s.TaskGeneration)
	output += fmt.Sprintf("WorkerCount: %d\n", s.WorkerCount)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil)

	misc.CheckError(s.MandelbrotSettings.Verify(), &s.logger, misc.Fatal)
	if s.MaxAttempts == 0 {
		s.MaxAttempts = DefaultMaxAttempts
	}
	if s.SavePath == "" {
		s.SavePath = DefaultSavePath
	}
	if s.Seed == 0 {
		s.Seed = time.Now().UnixNano()
	}
	if s.TaskGeneration < task.Row || s.TaskGeneration > task.Image {
		s.TaskGeneration = task.Row
	}
	if s.WorkerCount < 1 {
		s.WorkerCount = runtime.NumCPU()
	}

	s.logger.Debug(s.String())
	return nil
}
