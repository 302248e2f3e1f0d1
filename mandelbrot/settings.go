package mandelbrot

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultHeight        uint = 2000
	DefaultMaxIterations uint = 1000
	DefaultWidth         uint = 2000
)

type Settings struct {
	logger bslogger.Logger

	Height        uint
	MaxIterations uint
	Width         uint
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Height: %d\n", s.Height)
	output += fmt.Sprintf("MaxIterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Width: %d\n", s.Width)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = DefaultMaxIterations
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}

	s.logger.Debug(s.String())
	return nil
}
