package renderer

import (
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/df07/go-dirt/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	Seed            int64 // Seed of the render's random stream
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 1,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	// RayColor estimates the radiance along a primary ray
	RayColor(ray core.Ray, sampler core.Sampler) core.Vec3
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene   Scene
	config  SamplingConfig
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if config.SamplesPerPixel < 1 {
		config.SamplesPerPixel = 1
	}
	return &Raytracer{
		scene:   scene,
		config:  config,
		sampler: core.NewRandomSampler(rand.New(rand.NewSource(config.Seed))),
		logger:  logger,
	}
}

// Frame is a linear (not gamma corrected) HDR image
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// At returns the pixel at (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the pixel at (x, y)
func (f *Frame) Set(x, y int, c core.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// RGBA converts the frame to an 8-bit image with gamma correction and clamping
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(f.At(x, y)))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// Render traces SamplesPerPixel jittered rays through every pixel and averages them
func (rt *Raytracer) Render() (*Frame, RenderStats) {
	camera := rt.scene.GetCamera()
	width, height := camera.Width(), camera.Height()
	frame := NewFrame(width, height)

	core.ResetCounters()
	start := time.Now()
	rt.logger.Printf("Rendering %dx%d at %d spp", width, height, rt.config.SamplesPerPixel)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorAccum := core.Vec3{}
			for s := 0; s < rt.config.SamplesPerPixel; s++ {
				core.CountRay()
				jitter := rt.sampler.Get2D()
				ray := camera.GenerateRay(float64(x)+jitter.X, float64(y)+jitter.Y)
				colorAccum = colorAccum.Add(rt.scene.RayColor(ray, rt.sampler))
			}
			frame.Set(x, y, colorAccum.Multiply(1.0/float64(rt.config.SamplesPerPixel)))
		}
	}

	stats := NewRenderStats(frame, rt.config.SamplesPerPixel, time.Since(start))
	rt.logger.Printf("Render completed in %v (%d rays, %d intersection tests)",
		stats.Duration, stats.RaysTraced, stats.IntersectionTests)
	return frame, stats
}
