package renderer

import (
	"image"
	"time"

	"github.com/df07/go-dirt/pkg/core"
	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels       int           // Total number of pixels rendered
	SamplesPerPixel   int           // Samples taken per pixel
	TotalSamples      int           // Total number of samples taken
	RaysTraced        int64         // Camera rays, one per sample
	IntersectionTests int64         // Ray/primitive tests performed
	Duration          time.Duration // Wall time of the render
	MeanLuminance     float64       // Mean linear pixel luminance
	StdDevLuminance   float64       // Standard deviation of linear pixel luminance
}

// NewRenderStats summarizes a finished frame. Counters are read from core.
func NewRenderStats(frame *Frame, samplesPerPixel int, duration time.Duration) RenderStats {
	luminance := make([]float64, len(frame.Pixels))
	for i, p := range frame.Pixels {
		luminance[i] = p.Luminance()
	}

	stats := RenderStats{
		TotalPixels:       len(frame.Pixels),
		SamplesPerPixel:   samplesPerPixel,
		TotalSamples:      len(frame.Pixels) * samplesPerPixel,
		RaysTraced:        core.RaysTraced(),
		IntersectionTests: core.IntersectionTests(),
		Duration:          duration,
	}
	if len(luminance) > 1 {
		stats.MeanLuminance, stats.StdDevLuminance = stat.MeanStdDev(luminance, nil)
	} else if len(luminance) == 1 {
		stats.MeanLuminance = luminance[0]
	}
	return stats
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an 8-bit image, in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	values := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			values = append(values, core.NewVec3(float64(r), float64(g), float64(b)).Luminance()/0xffff)
		}
	}
	return stat.Mean(values, nil)
}
