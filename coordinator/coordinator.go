package coordinator

import (
	"math/rand"
	"time"

	"RandomMandelbrot/mandelbrot"
	"RandomMandelbrot/misc"
	"RandomMandelbrot/region"
	"github.com/BrugadaSyndrome/bslogger"
)

type Coordinator struct {
	logger     bslogger.Logger
	mandelbrot mandelbrot.Mandelbrot
	now        func() time.Time
	rng        *rand.Rand
	sampler    region.Sampler
	settings   Settings
}

func NewCoordinator(settings Settings) *Coordinator {
	coordinator := &Coordinator{
		logger:  bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		now:     time.Now,
		sampler: region.NewSampler(region.InterestingRegions),
	}
	misc.CheckError(settings.Verify(), &coordinator.logger, misc.Fatal)

	coordinator.settings = settings
	coordinator.mandelbrot = mandelbrot.NewMandelbrot(settings.MandelbrotSettings)
	coordinator.rng = rand.New(rand.NewSource(settings.Seed))
	return coordinator
}

// FindRegion
// Samples regions until one passes validation. The last allowed attempt is taken as is so the search always ends.
// The returned count is the number of rejected regions.
func (c *Coordinator) FindRegion() (mandelbrot.Viewport, uint) {
	validator := region.NewValidator(&c.mandelbrot)

	var attempts uint
	for {
		viewport := c.sampler.Sample(c.rng)
		if attempts >= c.settings.MaxAttempts || validator.IsInteresting(viewport) {
			return viewport, attempts
		}
		c.logger.Debugf("Rejected %s", viewport.String())
		attempts++
	}
}

// Run
// Picks a region and a color scheme, renders the image and saves it. Returns the path of the saved image.
func (c *Coordinator) Run() (string, error) {
	viewport, attempts := c.FindRegion()
	c.logger.Infof("(at attempt #%d): generating a mandelbrot image for coordinate (%v, %v), zoom %v",
		attempts, viewport.CenterRe, viewport.CenterIm, viewport.Zoom)

	// All randomness is used up before rendering starts
	scheme := mandelbrot.RandomColorScheme(c.rng)
	c.logger.Debugf("Using %s", scheme.String())

	startTime := time.Now()
	img := c.Render(viewport, scheme)
	c.logger.Debugf("Rendered %dx%d image in %s", img.Rect.Dx(), img.Rect.Dy(), time.Since(startTime))

	err := misc.EnsureDirectory(c.settings.SavePath)
	if err != nil {
		return "", err
	}

	path := ImageFileName(c.settings.SavePath, viewport, scheme.Name(), c.now().Unix())
	bytesWritten, err := misc.SavePNG(path, img)
	if err != nil {
		return "", err
	}
	c.logger.Debugf("Wrote %d bytes to %s", bytesWritten, path)

	c.logger.Infof("%v + %vi at zoom %.10e (%s). Saved the image as: %s",
		viewport.CenterRe, viewport.CenterIm, viewport.Zoom, scheme.Name(), path)
	return path, nil
}
