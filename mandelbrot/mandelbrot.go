package mandelbrot

import (
	"image/color"
)

type Mandelbrot struct {
	settings Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	mandelbrot := Mandelbrot{
		settings: settings,
	}

	return mandelbrot
}

func (m *Mandelbrot) Settings() Settings {
	return m.settings
}

// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Unoptimized_na%C3%AFve_escape_time_algorithm
func EscapeTime(c complex128, maxIterations uint) uint {
	z := complex(0, 0)
	var iteration uint
	// |z|^2 <= 4 is the same as |z| <= 2 without the square root
	for iteration < maxIterations && real(z)*real(z)+imag(z)*imag(z) <= 4.0 {
		z = z*z + c
		iteration++
	}
	return iteration
}

func (m *Mandelbrot) EscapeTime(c complex128) uint {
	return EscapeTime(c, m.settings.MaxIterations)
}

func (m *Mandelbrot) GetColor(iteration uint, scheme ColorScheme) color.RGBA {
	return ColorFor(iteration, m.settings.MaxIterations, scheme)
}

// GetPixelColor
// Maps the (column, row) pixel of the configured image onto the viewport and returns its final color
func (m *Mandelbrot) GetPixelColor(viewport Viewport, scheme ColorScheme, column uint, row uint) color.RGBA {
	c := viewport.Point(int(column), int(row), int(m.settings.Width), int(m.settings.Height))
	return m.GetColor(m.EscapeTime(c), scheme)
}
