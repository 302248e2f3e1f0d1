package mandelbrot

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"RandomMandelbrot/misc"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	Blue Scheme = iota
	Red
	Rainbow
	Greyscale
	Blueish
	Forest
	Electric
	Pastel
	Monochrome
)

type Scheme int

// Name is used when naming the output file
func (s Scheme) Name() string {
	return []string{
		"blues", "fire", "rainbow", "greyscale", "ocean", "forest", "electric", "pastel", "monochrome",
	}[s]
}

func (s Scheme) String() string {
	return []string{
		"Blue", "Red", "Rainbow", "Greyscale", "Blueish", "Forest", "Electric", "Pastel", "Monochrome",
	}[s]
}

// ColorScheme is picked once per image. Hue only applies to Monochrome and is in [0, 360).
type ColorScheme struct {
	Scheme Scheme
	Hue    float64
}

func (cs ColorScheme) Name() string {
	return cs.Scheme.Name()
}

func (cs ColorScheme) String() string {
	if cs.Scheme == Monochrome {
		return fmt.Sprintf("{ColorScheme %s Hue: %f}", cs.Scheme, cs.Hue)
	}
	return fmt.Sprintf("{ColorScheme %s}", cs.Scheme)
}

func RandomColorScheme(rng *rand.Rand) ColorScheme {
	scheme := ColorScheme{Scheme: Scheme(rng.Intn(int(Monochrome) + 1))}
	if scheme.Scheme == Monochrome {
		scheme.Hue = rng.Float64() * 360.0
	}
	return scheme
}

// HSVToRGB
// Hue is in degrees [0, 360), saturation and value are in [0, 1]. Channels are truncated, not rounded.
func HSVToRGB(h float64, s float64, v float64) (uint8, uint8, uint8) {
	c := colorful.Hsv(h, s, v)
	return misc.UnitToUint8(c.R), misc.UnitToUint8(c.G), misc.UnitToUint8(c.B)
}

func hsvColor(h float64, s float64, v float64) color.RGBA {
	r, g, b := HSVToRGB(h, s, v)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func ColorFor(iteration uint, maxIterations uint, scheme ColorScheme) color.RGBA {
	// Points that never escaped are part of the set
	if iteration == maxIterations {
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}

	speed := float64(iteration) / float64(maxIterations)
	switch scheme.Scheme {
	case Blue:
		return hsvColor(240.0-60.0*speed, 0.8+0.2*speed, 0.7+0.3*speed)
	case Red:
		return hsvColor(60.0*speed, 1.0, 0.5+0.5*speed)
	case Rainbow:
		return hsvColor(360.0*speed, 0.8, 0.9)
	case Greyscale:
		grey := misc.UnitToUint8(speed)
		return color.RGBA{R: grey, G: grey, B: grey, A: 255}
	case Blueish:
		return hsvColor(180.0+60.0*speed, 0.7, 0.5+0.5*speed)
	case Forest:
		return hsvColor(120.0-40.0*speed, 0.8-0.3*speed, 0.4+0.6*speed)
	case Electric:
		return color.RGBA{
			R: misc.UnitToUint8(math.Sin(math.Pi*speed*8.0)*0.5 + 0.5),
			G: misc.UnitToUint8(math.Sin(math.Pi*speed*4.0)*0.5 + 0.5),
			B: misc.UnitToUint8(math.Sin(math.Pi*speed*2.0)*0.5 + 0.5),
			A: 255,
		}
	case Pastel:
		return hsvColor(360.0*speed, 0.4, 0.9)
	case Monochrome:
		return hsvColor(scheme.Hue, 0.8, speed)
	}
	return color.RGBA{R: 0, G: 0, B: 0, A: 255}
}
