package main

import (
	"RandomMandelbrot/coordinator"
	"RandomMandelbrot/misc"
	"github.com/BrugadaSyndrome/bslogger"
)

func main() {
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	// Every setting falls back to its default
	c := coordinator.NewCoordinator(coordinator.Settings{})

	_, err := c.Run()
	misc.CheckError(err, &logger, misc.Fatal)
}
