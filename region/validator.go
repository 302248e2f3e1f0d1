package region

import (
	"RandomMandelbrot/mandelbrot"
)

const (
	gridSize      = 30
	histogramSize = 5
	minInside     = 0.05
	maxInside     = 0.95
)

// Validator cheaply decides if a viewport is worth rendering by sampling a coarse grid instead of every pixel
type Validator struct {
	mandelbrot *mandelbrot.Mandelbrot
}

func NewValidator(m *mandelbrot.Mandelbrot) Validator {
	return Validator{mandelbrot: m}
}

// Histogram
// Bucket 0 counts points that never escaped. Buckets 1-4 split the escaped points into four equal bands of
// iteration counts.
func (v *Validator) Histogram(viewport mandelbrot.Viewport) [histogramSize]uint {
	var histogram [histogramSize]uint
	maxIterations := v.mandelbrot.Settings().MaxIterations

	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			iterations := v.mandelbrot.EscapeTime(viewport.Point(x, y, gridSize, gridSize))
			if iterations == maxIterations {
				histogram[0]++
				continue
			}
			histogram[1+iterations*4/maxIterations]++
		}
	}
	return histogram
}

// IsInteresting rejects viewports that are almost all inside or almost all outside the set, then requires at least
// one escaped point.
func (v *Validator) IsInteresting(viewport mandelbrot.Viewport) bool {
	return accepts(v.Histogram(viewport))
}

// accepts keeps inside ratios of exactly 5% and 95%, only ratios beyond them are rejected
func accepts(histogram [histogramSize]uint) bool {
	var total uint
	for _, count := range histogram {
		total += count
	}
	if total == 0 {
		return false
	}

	insideRatio := float64(histogram[0]) / float64(total)
	if insideRatio < minInside || insideRatio > maxInside {
		return false
	}

	for _, count := range histogram[1:] {
		if count > 0 {
			return true
		}
	}
	return false
}
