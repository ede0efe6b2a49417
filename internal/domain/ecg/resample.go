package ecg

import (
	"fmt"
	"math"
	"strconv"
)

// Zoom limits of the signal view.
const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	ZoomStep    = 0.25
	DefaultZoom = 1.0
)

// ClampZoom keeps z inside [MinZoom, MaxZoom] and snaps it to the step grid.
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return DefaultZoom
	}
	z = math.Round(z/ZoomStep) * ZoomStep
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

func ZoomIn(z float64) float64  { return ClampZoom(z + ZoomStep) }
func ZoomOut(z float64) float64 { return ClampZoom(z - ZoomStep) }

// ParseZoom reads a query value; empty means DefaultZoom.
func ParseZoom(raw string) (float64, error) {
	if raw == "" {
		return DefaultZoom, nil
	}
	z, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultZoom, fmt.Errorf("invalid zoom %q: %w", raw, err)
	}
	return ClampZoom(z), nil
}

// ZoomPercent renders the zoom the way the controls show it.
func ZoomPercent(z float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(z*100)))
}

// SamplesPerPixel is how many samples one drawn pixel covers.
func SamplesPerPixel(samples, width int, zoom float64) float64 {
	if width <= 0 || zoom <= 0 {
		return 0
	}
	return float64(samples) / (float64(width) * zoom)
}

// Resample maps data onto width·zoom pixels by nearest-index lookup. No
// interpolation is done, so high zoom aliases visibly.
func Resample(data []float64, width int, zoom float64) []float64 {
	spp := SamplesPerPixel(len(data), width, zoom)
	if spp == 0 {
		return nil
	}

	span := float64(width) * zoom
	n := int(math.Ceil(span))
	out := make([]float64, n)
	for x := 0; x < n; x++ {
		idx := int(math.Floor(float64(x) * spp))
		if idx >= 0 && idx < len(data) {
			out[x] = data[idx]
		}
	}
	return out
}

// Point is a pixel coordinate on a drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Trace converts resampled voltages to pixel points around the vertical
// centre, one third of the height per unit of voltage.
func Trace(values []float64, height float64) []Point {
	centre := height / 2
	amp := height / 3
	pts := make([]Point, len(values))
	for x, v := range values {
		pts[x] = Point{X: float64(x), Y: centre - v*amp}
	}
	return pts
}
