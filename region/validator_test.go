package region

import (
	"testing"

	"RandomMandelbrot/mandelbrot"
)

func newTestValidator(t *testing.T) Validator {
	t.Helper()
	settings := mandelbrot.Settings{}
	if err := settings.Verify(); err != nil {
		t.Fatalf("Verify() returned %s", err)
	}
	m := mandelbrot.NewMandelbrot(settings)
	return NewValidator(&m)
}

func TestValidatorRejectsAllInside(t *testing.T) {
	validator := newTestValidator(t)
	viewport := mandelbrot.Viewport{CenterRe: 0, CenterIm: 0, Zoom: 1000}

	histogram := validator.Histogram(viewport)
	if histogram[0] != gridSize*gridSize {
		t.Errorf("inside count = %d, want %d", histogram[0], gridSize*gridSize)
	}
	if validator.IsInteresting(viewport) {
		t.Errorf("IsInteresting(%s) = true, want false", viewport.String())
	}
}

func TestValidatorRejectsAllOutside(t *testing.T) {
	validator := newTestValidator(t)
	viewport := mandelbrot.Viewport{CenterRe: 100, CenterIm: 100, Zoom: 1}

	histogram := validator.Histogram(viewport)
	if histogram[0] != 0 {
		t.Errorf("inside count = %d, want 0", histogram[0])
	}
	if validator.IsInteresting(viewport) {
		t.Errorf("IsInteresting(%s) = true, want false", viewport.String())
	}
}

func TestValidatorAcceptsBoundary(t *testing.T) {
	validator := newTestValidator(t)
	viewport := mandelbrot.Viewport{CenterRe: -0.5, CenterIm: 0, Zoom: 1.5}

	histogram := validator.Histogram(viewport)
	var total uint
	for _, count := range histogram {
		total += count
	}
	if total != gridSize*gridSize {
		t.Errorf("histogram holds %d points, want %d", total, gridSize*gridSize)
	}
	if !validator.IsInteresting(viewport) {
		t.Errorf("IsInteresting(%s) = false, want true (histogram %v)", viewport.String(), histogram)
	}
}

func TestAcceptsInsideRatioBounds(t *testing.T) {
	tests := []struct {
		name      string
		histogram [histogramSize]uint
		want      bool
	}{
		{"exactly 5% inside", [histogramSize]uint{45, 855, 0, 0, 0}, true},
		{"exactly 95% inside", [histogramSize]uint{855, 0, 0, 0, 45}, true},
		{"just under 5% inside", [histogramSize]uint{44, 856, 0, 0, 0}, false},
		{"just over 95% inside", [histogramSize]uint{856, 0, 44, 0, 0}, false},
		{"all inside", [histogramSize]uint{900, 0, 0, 0, 0}, false},
		{"all outside", [histogramSize]uint{0, 900, 0, 0, 0}, false},
		{"half inside spread over bands", [histogramSize]uint{450, 100, 100, 100, 150}, true},
		{"no points", [histogramSize]uint{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := accepts(tt.histogram); got != tt.want {
				t.Errorf("accepts(%v) = %t, want %t", tt.histogram, got, tt.want)
			}
		})
	}
}
