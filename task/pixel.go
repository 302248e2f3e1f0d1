package task

import (
	"fmt"
	"image/color"
)

// Pixel is the computed color for one Coordinate
type Pixel struct {
	Coordinate
	Color color.RGBA
}

func (p *Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("Color: %v ", p.Color)
	output += fmt.Sprintf("Coordinate: %s}", p.Coordinate.String())
	return output
}
