package mandelbrot

import (
	"fmt"
	"math"
)

// Viewport is the square area of the complex plane that gets mapped onto the image. The visible span on both axes
// is 4 / Zoom.
type Viewport struct {
	CenterRe float64
	CenterIm float64
	Zoom     float64
}

func NewViewport(centerRe float64, centerIm float64, zoom float64) (Viewport, error) {
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) || zoom <= 0 {
		return Viewport{}, fmt.Errorf("invalid zoom %v - zoom must be a positive finite number", zoom)
	}
	return Viewport{CenterRe: centerRe, CenterIm: centerIm, Zoom: zoom}, nil
}

func (v *Viewport) String() string {
	output := "{Viewport "
	output += fmt.Sprintf("CenterRe: %v ", v.CenterRe)
	output += fmt.Sprintf("CenterIm: %v ", v.CenterIm)
	output += fmt.Sprintf("Zoom: %v}", v.Zoom)
	return output
}

func (v *Viewport) Scale() float64 {
	return 4.0 / v.Zoom
}

// Min returns the lower bound of the real and imaginary axis
func (v *Viewport) Min() (float64, float64) {
	scale := v.Scale()
	return v.CenterRe - scale/2.0, v.CenterIm - scale/2.0
}

// Point
// Converts the (x, y) point of a width x height grid to a point on the complex plane. Row 0 is the lowest imaginary
// value, the image is not flipped vertically.
func (v *Viewport) Point(x int, y int, width int, height int) complex128 {
	scale := v.Scale()
	reMin, imMin := v.Min()
	return complex(
		reMin+(float64(x)/float64(width))*scale,
		imMin+(float64(y)/float64(height))*scale,
	)
}
