package coordinator

import (
	"fmt"
	"path/filepath"
	"strconv"

	"RandomMandelbrot/mandelbrot"
)

// ImageFileName builds <savePath>/mandelbrot_{re}_{im}_{zoom}_{scheme}_{unix seconds}.png
func ImageFileName(savePath string, viewport mandelbrot.Viewport, schemeName string, timestamp int64) string {
	name := fmt.Sprintf("mandelbrot_%s_%s_%s_%s_%d.png",
		formatFloat(viewport.CenterRe), formatFloat(viewport.CenterIm), formatFloat(viewport.Zoom), schemeName, timestamp)
	return filepath.Join(savePath, name)
}

// formatFloat prints the shortest decimal that reads back as f, never in exponent form
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
