package region

import (
	"fmt"
	"math"
	"math/rand"

	"RandomMandelbrot/mandelbrot"
)

// Region is a hand picked disc of the complex plane known to render well
type Region struct {
	Name     string
	CenterRe float64
	CenterIm float64
	Radius   float64
	Weight   float64
}

func (r *Region) String() string {
	output := "{Region "
	output += fmt.Sprintf("Name: %s ", r.Name)
	output += fmt.Sprintf("CenterRe: %v ", r.CenterRe)
	output += fmt.Sprintf("CenterIm: %v ", r.CenterIm)
	output += fmt.Sprintf("Radius: %v ", r.Radius)
	output += fmt.Sprintf("Weight: %v}", r.Weight)
	return output
}

// Weights do not need to add up to 1
var InterestingRegions = []Region{
	{Name: "main bulb boundary", CenterRe: -0.75, CenterIm: 0.1, Radius: 0.1, Weight: 0.2},
	{Name: "satellite bulb", CenterRe: -0.16, CenterIm: 1.0, Radius: 0.05, Weight: 0.1},
	{Name: "valley between large bulbs", CenterRe: -0.77, CenterIm: 0.08, Radius: 0.2, Weight: 0.15},
	{Name: "filaments", CenterRe: -1.25, CenterIm: 0.0, Radius: 0.2, Weight: 0.1},
	{Name: "period-3 bulb", CenterRe: -1.75, CenterIm: 0.0, Radius: 0.05, Weight: 0.05},
	{Name: "spiral formation", CenterRe: -0.9, CenterIm: 0.27, Radius: 0.13, Weight: 0.1},
	{Name: "detailed mini spirals", CenterRe: -0.12, CenterIm: 0.74, Radius: 0.02, Weight: 0.05},
	{Name: "mini-Mandelbrot near boundary", CenterRe: 0.2, CenterIm: 0.56, Radius: 0.02, Weight: 0.1},
	{Name: "detailed edges", CenterRe: -1.4, CenterIm: 0.0, Radius: 0.1, Weight: 0.05},
	{Name: "dendrite formation", CenterRe: -0.5, CenterIm: 0.56, Radius: 0.05, Weight: 0.1},
}

var fallback = Region{Name: "fallback", CenterRe: -0.75, CenterIm: 0.1}

type Sampler struct {
	regions     []Region
	totalWeight float64
}

func NewSampler(regions []Region) Sampler {
	sampler := Sampler{regions: regions}
	for _, r := range regions {
		sampler.totalWeight += r.Weight
	}
	return sampler
}

// choose walks the table subtracting weights until the draw lands in a region. Returns -1 when floating point
// drift lets the draw fall through every region.
func (s *Sampler) choose(rng *rand.Rand) int {
	choice := rng.Float64() * s.totalWeight
	for i, r := range s.regions {
		if choice <= r.Weight {
			return i
		}
		choice -= r.Weight
	}
	return -1
}

// Sample
// Picks a weighted region and a point inside it. The angle is uniform and the distance is uniform along the radius,
// so points gather toward the center of the disc. Smaller regions are zoomed in further. A draw that falls through
// the table, or a region that yields an unusable zoom, is replaced by the fallback region.
func (s *Sampler) Sample(rng *rand.Rand) mandelbrot.Viewport {
	i := s.choose(rng)
	if i < 0 {
		return sampleFallback(rng)
	}

	r := s.regions[i]
	angle := rng.Float64() * 2.0 * math.Pi
	distance := rng.Float64() * r.Radius

	zoomFactor := 10000.0
	if r.Radius < 0.05 {
		zoomFactor = 100000.0
	}

	viewport, err := mandelbrot.NewViewport(
		r.CenterRe+distance*math.Cos(angle),
		r.CenterIm+distance*math.Sin(angle),
		(zoomFactor/r.Radius)*uniform(rng, 0.1, 10.0),
	)
	if err != nil {
		return sampleFallback(rng)
	}
	return viewport
}

func sampleFallback(rng *rand.Rand) mandelbrot.Viewport {
	viewport, err := mandelbrot.NewViewport(fallback.CenterRe, fallback.CenterIm, uniform(rng, 1000.0, 100000.0))
	if err != nil {
		// the fallback zoom is always within [1000, 100000]
		panic(err)
	}
	return viewport
}

func uniform(rng *rand.Rand, low float64, high float64) float64 {
	return low + rng.Float64()*(high-low)
}
